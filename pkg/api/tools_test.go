package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devutils/devutils/pkg/config"
)

func TestFormatJSON(t *testing.T) {
	server := newTestServer(t, config.DevUtilsConfig{}, nil)

	t.Run("pretty prints", func(t *testing.T) {
		resp, decoded := postJSON(t, server.URL+"/api/json/format", `{"data":"{\"b\":2,\"a\":1}"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `true`, string(decoded["isValid"]))

		var output string
		require.NoError(t, json.Unmarshal(decoded["output"], &output))
		assert.Equal(t, "{\n  \"b\": 2,\n  \"a\": 1\n}", output)
	})

	t.Run("minifies", func(t *testing.T) {
		resp, decoded := postJSON(t, server.URL+"/api/json/format", `{"data":"{ \"a\" : 1 }","minify":true}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var output string
		require.NoError(t, json.Unmarshal(decoded["output"], &output))
		assert.Equal(t, `{"a":1}`, output)
	})

	t.Run("flags invalid input", func(t *testing.T) {
		resp, decoded := postJSON(t, server.URL+"/api/json/format", `{"data":"{broken"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `false`, string(decoded["isValid"]))
	})
}

func TestBase64(t *testing.T) {
	server := newTestServer(t, config.DevUtilsConfig{}, nil)

	resp, decoded := postJSON(t, server.URL+"/api/base64/encode", `{"data":"hello world"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var encoded string
	require.NoError(t, json.Unmarshal(decoded["output"], &encoded))
	assert.Equal(t, "aGVsbG8gd29ybGQ=", encoded)

	resp, decoded = postJSON(t, server.URL+"/api/base64/decode", `{"data":"aGVsbG8gd29ybGQ="}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var plain string
	require.NoError(t, json.Unmarshal(decoded["output"], &plain))
	assert.Equal(t, "hello world", plain)

	t.Run("rejects invalid base64", func(t *testing.T) {
		resp, _ := postJSON(t, server.URL+"/api/base64/decode", `{"data":"not!!base64"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestURLCodec(t *testing.T) {
	server := newTestServer(t, config.DevUtilsConfig{}, nil)

	resp, decoded := postJSON(t, server.URL+"/api/url/encode", `{"data":"a b&c=d"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var encoded string
	require.NoError(t, json.Unmarshal(decoded["output"], &encoded))
	assert.Equal(t, "a+b%26c%3Dd", encoded)

	resp, decoded = postJSON(t, server.URL+"/api/url/decode", `{"data":"a+b%26c%3Dd"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var plain string
	require.NoError(t, json.Unmarshal(decoded["output"], &plain))
	assert.Equal(t, "a b&c=d", plain)
}

func TestGenerateUUID(t *testing.T) {
	server := newTestServer(t, config.DevUtilsConfig{}, nil)

	resp, decoded := getJSON(t, server.URL+"/api/uuid?count=3")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var uuids []string
	require.NoError(t, json.Unmarshal(decoded["uuids"], &uuids))
	require.Len(t, uuids, 3)
	assert.NotEqual(t, uuids[0], uuids[1])
	assert.Len(t, uuids[0], 36)

	t.Run("rejects out-of-range count", func(t *testing.T) {
		resp, _ := getJSON(t, server.URL+"/api/uuid?count=0")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDecodeJWT(t *testing.T) {
	server := newTestServer(t, config.DevUtilsConfig{}, nil)

	// HS256 token with payload {"sub":"1234567890","name":"John Doe","iat":1516239022}
	token := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJzdWIiOiIxMjM0NTY3ODkwIiwibmFtZSI6IkpvaG4gRG9lIiwiaWF0IjoxNTE2MjM5MDIyfQ." +
		"SflKxwRJSMeKKF2QT4fwpMeJf36POk6yJV_adQssw5c"

	resp, decoded := postJSON(t, server.URL+"/api/jwt/decode", `{"token":"`+token+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var header map[string]any
	require.NoError(t, json.Unmarshal(decoded["header"], &header))
	assert.Equal(t, "HS256", header["alg"])

	var claims map[string]any
	require.NoError(t, json.Unmarshal(decoded["claims"], &claims))
	assert.Equal(t, "John Doe", claims["name"])

	assert.JSONEq(t, `false`, string(decoded["verified"]))

	t.Run("rejects garbage", func(t *testing.T) {
		resp, _ := postJSON(t, server.URL+"/api/jwt/decode", `{"token":"garbage"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
