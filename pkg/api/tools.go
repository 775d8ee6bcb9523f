package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// Stateless helpers backing the browser tools. Each endpoint shapes a
// response around a single library call; tool state never touches the
// server except through share links.

type toolRequest struct {
	Data   string `json:"data"`
	Indent int    `json:"indent"`
	Minify bool   `json:"minify"`
}

func decodeToolRequest(w http.ResponseWriter, r *http.Request) (*toolRequest, bool) {
	var req toolRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, render.M{"error": "Invalid request body"})
		return nil, false
	}
	return &req, true
}

func (a *DevUtilsAPIStruct) FormatJSON(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeToolRequest(w, r)
	if !ok {
		return
	}

	if !gjson.Valid(req.Data) {
		render.JSON(w, r, render.M{"success": true, "isValid": false, "output": ""})
		return
	}

	var buf bytes.Buffer
	var err error
	if req.Minify {
		err = json.Compact(&buf, []byte(req.Data))
	} else {
		indent := req.Indent
		if indent <= 0 {
			indent = 2
		}
		err = json.Indent(&buf, []byte(req.Data), "", strings.Repeat(" ", indent))
	}
	if err != nil {
		render.JSON(w, r, render.M{"success": true, "isValid": false, "output": ""})
		return
	}

	render.JSON(w, r, render.M{"success": true, "isValid": true, "output": buf.String()})
}

func (a *DevUtilsAPIStruct) Base64Encode(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeToolRequest(w, r)
	if !ok {
		return
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(req.Data))
	render.JSON(w, r, render.M{"success": true, "output": encoded})
}

func (a *DevUtilsAPIStruct) Base64Decode(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeToolRequest(w, r)
	if !ok {
		return
	}

	decoded, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, render.M{"error": "Input is not valid base64"})
		return
	}
	render.JSON(w, r, render.M{"success": true, "output": string(decoded)})
}

func (a *DevUtilsAPIStruct) URLEncode(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeToolRequest(w, r)
	if !ok {
		return
	}

	render.JSON(w, r, render.M{"success": true, "output": url.QueryEscape(req.Data)})
}

func (a *DevUtilsAPIStruct) URLDecode(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeToolRequest(w, r)
	if !ok {
		return
	}

	decoded, err := url.QueryUnescape(req.Data)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, render.M{"error": "Input is not valid URL encoding"})
		return
	}
	render.JSON(w, r, render.M{"success": true, "output": decoded})
}

func (a *DevUtilsAPIStruct) GenerateUUID(w http.ResponseWriter, r *http.Request) {
	count := 1
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, render.M{"error": "count must be between 1 and 100"})
			return
		}
		count = parsed
	}

	uuids := make([]string, count)
	for i := range uuids {
		uuids[i] = uuid.NewString()
	}
	render.JSON(w, r, render.M{"success": true, "uuids": uuids})
}

func (a *DevUtilsAPIStruct) DecodeJWT(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := render.DecodeJSON(r.Body, &req); err != nil || req.Token == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, render.M{"error": "Missing token"})
		return
	}

	claims := jwt.MapClaims{}
	token, _, err := jwt.NewParser().ParseUnverified(req.Token, claims)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, render.M{"error": "Input is not a valid JWT"})
		return
	}

	render.JSON(w, r, render.M{
		"success": true,
		"header":  token.Header,
		"claims":  claims,
		// decoding never checks the signature
		"verified": false,
	})
}
