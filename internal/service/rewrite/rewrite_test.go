package rewrite_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alanyang/redraft/internal/domain/event"
	domainprompt "github.com/alanyang/redraft/internal/domain/prompt"
	domainrewrite "github.com/alanyang/redraft/internal/domain/rewrite"
	"github.com/alanyang/redraft/internal/mocks"
	promptssvc "github.com/alanyang/redraft/internal/service/prompts"
	"github.com/alanyang/redraft/internal/service/rewrite"
)

type fixture struct {
	repo *mocks.MockPromptRepository
	gen  *mocks.MockGenerator
	log  *mocks.MockRewriteLog
	bus  *mocks.MockEventBus
	svc  *rewrite.Service
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		repo: mocks.NewMockPromptRepository(ctrl),
		gen:  mocks.NewMockGenerator(ctrl),
		log:  mocks.NewMockRewriteLog(ctrl),
		bus:  mocks.NewMockEventBus(ctrl),
	}
	f.svc = rewrite.NewService(promptssvc.NewService(f.repo, f.bus, false), f.gen, f.log, f.bus)
	return f
}

func (f fixture) expectCompose(base string, tone domainprompt.Tone) {
	f.repo.EXPECT().ActiveBasePrompt(gomock.Any()).
		Return(domainprompt.BasePrompt{Content: base, IsActive: true}, nil)
	f.repo.EXPECT().ToneByKeyword(gomock.Any(), tone.Keyword).Return(tone, nil)
}

func TestRewrite(t *testing.T) {
	f := newFixture(t)
	tone := domainprompt.Tone{Keyword: "friendly", Label: "Friendly", Instructions: "Be warm"}
	f.expectCompose("Company base prompt.", tone)

	var sentPrompt string
	f.gen.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p string) (string, error) {
			sentPrompt = p
			return "Hello team, hope you're well!", nil
		})
	f.log.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e domainrewrite.Entry) error {
			assert.Equal(t, "Hi team", e.OriginalEmail)
			assert.Equal(t, "friendly", e.Tone)
			assert.Equal(t, sentPrompt, e.FinalPrompt)
			assert.Equal(t, "Hello team, hope you're well!", e.ModelResponse)
			assert.False(t, e.Timestamp.IsZero())
			return nil
		})
	f.bus.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e event.Event) error {
			assert.Equal(t, event.TypeRewriteCompleted, e.Type)
			return nil
		})

	res, err := f.svc.Rewrite(context.Background(), "Hi team", "friendly")
	require.NoError(t, err)

	assert.Equal(t, "Hi team", res.Original)
	assert.Equal(t, "Hello team, hope you're well!", res.Rewritten)
	assert.Equal(t, "friendly", res.Tone)

	// The generation prompt carries the full composition.
	assert.True(t, strings.HasPrefix(sentPrompt, "Company base prompt."))
	assert.Contains(t, sentPrompt, "Tone Guidance (Friendly):\nBe warm")
	assert.Contains(t, sentPrompt, "Email to rewrite:\n---\nHi team\n---")
}

func TestRewrite_GeneratorError(t *testing.T) {
	f := newFixture(t)
	f.expectCompose("Base.", domainprompt.Tone{Keyword: "concise", Instructions: "Be brief"})

	f.gen.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return("", errors.New("model unavailable"))
	// Nothing is logged and no event fires on a failed generation.

	_, err := f.svc.Rewrite(context.Background(), "Hi", "concise")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generating rewrite")
}

func TestRewrite_AppendError(t *testing.T) {
	f := newFixture(t)
	f.expectCompose("Base.", domainprompt.Tone{Keyword: "concise", Instructions: "Be brief"})

	f.gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("out", nil)
	f.log.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := f.svc.Rewrite(context.Background(), "Hi", "concise")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recording rewrite")
}

func TestHistory(t *testing.T) {
	f := newFixture(t)
	f.log.EXPECT().ReadAll(gomock.Any()).Return([]domainrewrite.Entry{
		{OriginalEmail: "a", Tone: "friendly"},
		{OriginalEmail: "b", Tone: "concise"},
	}, nil)

	entries, err := f.svc.History(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].OriginalEmail)
}

func TestHistory_CorruptLog(t *testing.T) {
	f := newFixture(t)
	f.log.EXPECT().ReadAll(gomock.Any()).
		Return(nil, domainrewrite.ErrCorrupt)

	_, err := f.svc.History(context.Background())
	assert.ErrorIs(t, err, domainrewrite.ErrCorrupt)
}
