package prompts_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainprompt "github.com/alanyang/redraft/internal/domain/prompt"
	"github.com/alanyang/redraft/internal/mocks"
	promptssvc "github.com/alanyang/redraft/internal/service/prompts"
	"github.com/alanyang/redraft/internal/transport/prompts"
)

func setup(t *testing.T, strict bool) (*mocks.MockPromptRepository, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPromptRepository(ctrl)

	r := gin.New()
	prompts.Register(r.Group("/prompts"), promptssvc.NewService(repo, nil, strict))
	return repo, r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetBase(t *testing.T) {
	repo, r := setup(t, false)
	repo.EXPECT().ActiveBasePrompt(gomock.Any()).
		Return(domainprompt.BasePrompt{Content: "Base text", IsActive: true}, nil)

	w := do(r, http.MethodGet, "/prompts/base", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Base text")
}

func TestGetBase_Unseeded(t *testing.T) {
	repo, r := setup(t, false)
	repo.EXPECT().ActiveBasePrompt(gomock.Any()).
		Return(domainprompt.BasePrompt{}, domainprompt.ErrNoActiveBasePrompt)

	w := do(r, http.MethodGet, "/prompts/base", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	v, ok := body["content"]
	require.True(t, ok)
	assert.Nil(t, v)
}

func TestUpdateBase(t *testing.T) {
	repo, r := setup(t, false)
	repo.EXPECT().
		UpdateBasePrompt(gomock.Any(), "New base", "Cleanup").
		Return(domainprompt.BasePrompt{Content: "New base", IsActive: true}, nil)

	w := do(r, http.MethodPut, "/prompts/base", `{"content":"New base","reason":"Cleanup"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "New base")
}

func TestUpdateBase_MissingFields(t *testing.T) {
	_, r := setup(t, false)

	w := do(r, http.MethodPut, "/prompts/base", `{"content":"New base"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTones_Empty(t *testing.T) {
	repo, r := setup(t, false)
	repo.EXPECT().ActiveTones(gomock.Any()).Return(nil, nil)

	w := do(r, http.MethodGet, "/prompts/tones", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestCreateTone(t *testing.T) {
	repo, r := setup(t, false)
	repo.EXPECT().
		CreateTone(gomock.Any(), "punchy", "Punchy", "Short sentences.").
		Return(domainprompt.Tone{Keyword: "punchy", Label: "Punchy", Instructions: "Short sentences.", IsActive: true}, nil)

	w := do(r, http.MethodPost, "/prompts/tones",
		`{"keyword":"punchy","label":"Punchy","instructions":"Short sentences."}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "punchy")
}

func TestCreateTone_Duplicate(t *testing.T) {
	repo, r := setup(t, false)
	repo.EXPECT().
		CreateTone(gomock.Any(), "friendly", "Friendly", "Be warm").
		Return(domainprompt.Tone{}, domainprompt.ErrDuplicateKeyword)

	w := do(r, http.MethodPost, "/prompts/tones",
		`{"keyword":"friendly","label":"Friendly","instructions":"Be warm"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateTone(t *testing.T) {
	repo, r := setup(t, false)
	repo.EXPECT().
		UpdateToneInstructions(gomock.Any(), "friendly", "Warmer.", "Feedback").
		Return(domainprompt.Tone{Keyword: "friendly", Instructions: "Warmer."}, nil)

	w := do(r, http.MethodPut, "/prompts/tones/friendly",
		`{"instructions":"Warmer.","reason":"Feedback"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Warmer.")
}

func TestUpdateTone_UnknownLenient(t *testing.T) {
	repo, r := setup(t, false)
	repo.EXPECT().
		UpdateToneInstructions(gomock.Any(), "ghost", "x", "r").
		Return(domainprompt.Tone{}, domainprompt.ErrToneNotFound)

	w := do(r, http.MethodPut, "/prompts/tones/ghost", `{"instructions":"x","reason":"r"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ignored"`)
	assert.Contains(t, w.Body.String(), "ghost")
}

func TestUpdateTone_UnknownStrict(t *testing.T) {
	repo, r := setup(t, true)
	repo.EXPECT().
		UpdateToneInstructions(gomock.Any(), "ghost", "x", "r").
		Return(domainprompt.Tone{}, domainprompt.ErrToneNotFound)

	w := do(r, http.MethodPut, "/prompts/tones/ghost", `{"instructions":"x","reason":"r"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetHistory_LimitQuery(t *testing.T) {
	repo, r := setup(t, false)
	repo.EXPECT().History(gomock.Any(), 10).Return([]domainprompt.HistoryEntry{
		{ComponentType: domainprompt.ComponentBase, ComponentName: "Base Prompt", NewContent: "v2", ChangeReason: "edit"},
	}, nil)

	w := do(r, http.MethodGet, "/prompts/history?limit=10", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Base Prompt")
}

func TestApplySuggestion_Base(t *testing.T) {
	repo, r := setup(t, false)
	repo.EXPECT().
		UpdateBasePrompt(gomock.Any(), "Revised base", "Applied suggestion #2").
		Return(domainprompt.BasePrompt{Content: "Revised base", IsActive: true}, nil)

	w := do(r, http.MethodPost, "/prompts/apply-suggestion",
		`{"component_type":"base","new_content":"Revised base","reason":"Applied suggestion #2"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"applied"`)
}

func TestApplySuggestion_InvalidComponent(t *testing.T) {
	_, r := setup(t, false)

	w := do(r, http.MethodPost, "/prompts/apply-suggestion",
		`{"component_type":"style","new_content":"x","reason":"r"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplySuggestion_UnknownTone(t *testing.T) {
	repo, r := setup(t, false)
	repo.EXPECT().
		UpdateToneInstructions(gomock.Any(), "ghost", "x", "r").
		Return(domainprompt.Tone{}, domainprompt.ErrToneNotFound)

	w := do(r, http.MethodPost, "/prompts/apply-suggestion",
		`{"component_type":"tone","component_id":"ghost","new_content":"x","reason":"r"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
