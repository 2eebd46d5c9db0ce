package analysis_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	domainprompt "github.com/alanyang/redraft/internal/domain/prompt"
	domainrewrite "github.com/alanyang/redraft/internal/domain/rewrite"
	"github.com/alanyang/redraft/internal/mocks"
	analysissvc "github.com/alanyang/redraft/internal/service/analysis"
	"github.com/alanyang/redraft/internal/transport/analysis"
)

type fixture struct {
	repo *mocks.MockPromptRepository
	log  *mocks.MockRewriteLog
	chat *mocks.MockChatCompleter
	r    *gin.Engine
}

func setup(t *testing.T) fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	f := fixture{
		repo: mocks.NewMockPromptRepository(ctrl),
		log:  mocks.NewMockRewriteLog(ctrl),
		chat: mocks.NewMockChatCompleter(ctrl),
	}
	f.r = gin.New()
	analysis.Register(f.r.Group(""), analysissvc.NewService(f.repo, f.log, f.chat, nil))
	return f
}

func (f fixture) post() *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/analyse_prompt", nil)
	w := httptest.NewRecorder()
	f.r.ServeHTTP(w, req)
	return w
}

func TestAnalysePrompt(t *testing.T) {
	f := setup(t)
	f.repo.EXPECT().ActiveBasePrompt(gomock.Any()).
		Return(domainprompt.BasePrompt{Content: "Base.", IsActive: true}, nil)
	f.log.EXPECT().ReadAll(gomock.Any()).Return([]domainrewrite.Entry{
		{Tone: "friendly", OriginalEmail: "Hi", ModelResponse: "Hello!"},
	}, nil)
	f.chat.EXPECT().ChatComplete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`{"overall_summary":"Fine.","tone_analysis":[],"suggestions":[],"revised_base_prompt":"Base v2."}`, nil)

	w := f.post()

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Base v2.")
}

func TestAnalysePrompt_NoBasePrompt(t *testing.T) {
	f := setup(t)
	f.repo.EXPECT().ActiveBasePrompt(gomock.Any()).
		Return(domainprompt.BasePrompt{}, domainprompt.ErrNoActiveBasePrompt)

	w := f.post()

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "no active base prompt configured")
}

func TestAnalysePrompt_NoRewrites(t *testing.T) {
	f := setup(t)
	f.repo.EXPECT().ActiveBasePrompt(gomock.Any()).
		Return(domainprompt.BasePrompt{Content: "Base.", IsActive: true}, nil)
	f.log.EXPECT().ReadAll(gomock.Any()).Return([]domainrewrite.Entry{}, nil)

	w := f.post()

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no rewrite history")
}

func TestAnalysePrompt_CorruptLog(t *testing.T) {
	f := setup(t)
	f.repo.EXPECT().ActiveBasePrompt(gomock.Any()).
		Return(domainprompt.BasePrompt{Content: "Base.", IsActive: true}, nil)
	f.log.EXPECT().ReadAll(gomock.Any()).Return(nil, domainrewrite.ErrCorrupt)

	w := f.post()

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "rewrite history is unreadable")
}

func TestAnalysePrompt_MalformedModelOutput(t *testing.T) {
	f := setup(t)
	f.repo.EXPECT().ActiveBasePrompt(gomock.Any()).
		Return(domainprompt.BasePrompt{Content: "Base.", IsActive: true}, nil)
	f.log.EXPECT().ReadAll(gomock.Any()).Return([]domainrewrite.Entry{
		{Tone: "friendly", OriginalEmail: "Hi", ModelResponse: "Hello!"},
	}, nil)
	f.chat.EXPECT().ChatComplete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("Sure, here are my thoughts on the prompt.", nil)

	w := f.post()

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
