//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/engrave/cmd"
	"github.com/jsphweid/engrave/model"
	"github.com/stretchr/testify/assert"
)

func createResolveReqBody(body model.ResolveRequestBody) io.Reader {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestResolveMiddleCE2E(t *testing.T) {
	body := createResolveReqBody(model.ResolveRequestBody{Pitch: "C4"})
	req := httptest.NewRequest(http.MethodPost, "/resolve", body)
	w := httptest.NewRecorder()
	cmd.Router().ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var res model.ResolveResponse
	err := json.Unmarshal(respBody, &res)
	if err != nil {
		panic(err.Error())
	}
	assert.Equal("c/4", res.Key)
	assert.Equal("treble", res.Clef)
	assert.False(res.AccidentalDecided)
	assert.Equal("vf-"+res.VisualID+"-stem", res.StemID)
}

func TestResolveCommittedSharpE2E(t *testing.T) {
	body := createResolveReqBody(model.ResolveRequestBody{Pitch: "C#4", OctaveShift: "8va", Commit: true})
	req := httptest.NewRequest(http.MethodPost, "/resolve", body)
	w := httptest.NewRecorder()
	cmd.HandleResolve(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var res model.ResolveResponse
	err := json.Unmarshal(respBody, &res)
	if err != nil {
		panic(err.Error())
	}
	assert.Equal("c/4", res.Key)
	assert.Equal("#", res.Accidental)
	assert.Equal("sharp", res.DrawnAccidental)
}

func TestResolveBadClefE2E(t *testing.T) {
	body := createResolveReqBody(model.ResolveRequestBody{Pitch: "C4", Clef: "banjo"})
	req := httptest.NewRequest(http.MethodPost, "/resolve", body)
	w := httptest.NewRecorder()
	cmd.HandleResolve(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)

	var res model.ErrorResponse
	json.Unmarshal(respBody, &res)
	assert.Contains(res.Error, "banjo")
}

func TestResolveWrongMethodE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/resolve", nil)
	w := httptest.NewRecorder()
	cmd.Router().ServeHTTP(w, req)
	assert.Equal(t, 405, w.Result().StatusCode)
}
