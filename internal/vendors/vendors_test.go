package vendors_test

import (
	"context"
	"errors"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	"github.com/baalimago/gptc/internal/models"
	"github.com/baalimago/gptc/internal/vendors"
	"github.com/baalimago/gptc/internal/vendors/openai"
)

func Test_VendorsAreChatServices(t *testing.T) {
	gpt, err := openai.New("key")
	if err != nil {
		t.Fatalf("failed to create openai client: %v", err)
	}
	services := map[string]models.ChatService{
		"mock":   &vendors.Mock{},
		"openai": gpt,
	}
	for name, s := range services {
		if s == nil {
			t.Errorf("%v: expected a chat service", name)
		}
	}
}

func Test_MockEchoes(t *testing.T) {
	m := &vendors.Mock{}
	chat := models.NewChat("sys")
	chat.Append(models.RoleUser, "ping")
	ch, err := m.StreamCompletions(context.Background(), "some-model", chat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []models.CompletionEvent
	for ev := range ch {
		got = append(got, ev)
	}
	testboil.FailTestIfDiff(t, len(got), 2)
	testboil.FailTestIfDiff(t, got[0], models.CompletionEvent("ping"))
	testboil.FailTestIfDiff(t, got[1], models.CompletionEvent(models.StopEvent{}))
	testboil.FailTestIfDiff(t, m.Streamed[0], "some-model")
}

func Test_MockErrors(t *testing.T) {
	want := errors.New("nope")
	m := &vendors.Mock{Err: want}
	if _, err := m.StreamCompletions(context.Background(), "m", models.NewChat("sys")); !errors.Is(err, want) {
		t.Fatalf("expected %v, got: %v", want, err)
	}
	if _, err := m.ListModels(context.Background()); !errors.Is(err, want) {
		t.Fatalf("expected %v, got: %v", want, err)
	}
	testboil.FailTestIfDiff(t, m.ListCalled, 1)
}
