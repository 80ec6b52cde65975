package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/cartstore/pkg/metrics"
)

type tally struct {
	Count int
	Trail []string
}

type tallyAction string

type tallyReducer struct {
	onDo func()
}

func (r tallyReducer) Reduce(ctx context.Context, state *tally, action tallyAction) []Effect[tallyAction] {
	state.Trail = append(append([]string(nil), state.Trail...), string(action))
	switch action {
	case "inc":
		state.Count++
		return None[tallyAction]()
	case "inc-twice":
		return []Effect[tallyAction]{Send[tallyAction]("inc", "inc")}
	case "async":
		return []Effect[tallyAction]{Run("bump", func(ctx context.Context) tallyAction { return "inc" })}
	case "block":
		return []Effect[tallyAction]{Run("block", func(ctx context.Context) tallyAction {
			<-ctx.Done()
			return "inc"
		})}
	case "notify":
		return []Effect[tallyAction]{Do[tallyAction](r.onDo)}
	case "panic":
		return []Effect[tallyAction]{Run("boom", func(ctx context.Context) tallyAction { panic("boom") })}
	}
	return nil
}

func newTallyStore(t *testing.T, r tallyReducer, opts ...Option) *Store[tally, tallyAction] {
	t.Helper()
	s, err := New[tally, tallyAction](context.Background(), tally{}, r, opts...)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestNewRequiresReducer(t *testing.T) {
	_, err := New[tally, tallyAction](context.Background(), tally{}, nil)
	require.Error(t, err)
}

func TestSendRunsFollowUpsInOrder(t *testing.T) {
	s := newTallyStore(t, tallyReducer{})

	s.Send("inc-twice")

	got := s.State()
	require.Equal(t, 2, got.Count)
	require.Equal(t, []string{"inc-twice", "inc", "inc"}, got.Trail)
}

func TestRunFeedsResultBack(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := newTallyStore(t, tallyReducer{}, WithName("tally"), WithMetrics(metrics.NewStoreMetrics(reg)))

	s.Send("async")
	s.Wait()

	require.Equal(t, 1, s.State().Count)
	require.Equal(t, "tally", s.Name())
}

func TestCloseCancelsTasksAndDropsResults(t *testing.T) {
	s := newTallyStore(t, tallyReducer{})

	s.Send("block")
	done := make(chan struct{})
	go func() {
		s.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not cancel the blocking task")
	}

	require.Equal(t, 0, s.State().Count)

	s.Send("inc")
	require.Equal(t, 0, s.State().Count, "sends after close are dropped")
	s.Close()
}

func TestParentContextCancelsTasks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s, err := New[tally, tallyAction](ctx, tally{}, tallyReducer{})
	require.NoError(t, err)
	defer s.Close()

	s.Send("block")
	cancel()
	s.Wait()

	require.Equal(t, 0, s.State().Count)
}

func TestDoRunsOutsideLock(t *testing.T) {
	var s *Store[tally, tallyAction]
	var seen []string
	s = newTallyStore(t, tallyReducer{onDo: func() {
		seen = s.State().Trail
	}})

	s.Send("notify")

	require.Equal(t, []string{"notify"}, seen)
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	s := newTallyStore(t, tallyReducer{})

	var mu sync.Mutex
	var counts []int
	unsubscribe := s.Subscribe(func(st tally) {
		mu.Lock()
		counts = append(counts, st.Count)
		mu.Unlock()
	})

	s.Send("inc")
	s.Send("inc")
	unsubscribe()
	s.Send("inc")

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []int{1, 2}, counts)
}

func TestSnapshotsAreStable(t *testing.T) {
	s := newTallyStore(t, tallyReducer{})
	s.Send("inc")
	before := s.State()
	s.Send("inc")

	require.Equal(t, []string{"inc"}, before.Trail)
	require.Equal(t, []string{"inc", "inc"}, s.State().Trail)
}

func TestTaskPanicIsContained(t *testing.T) {
	s := newTallyStore(t, tallyReducer{})

	s.Send("panic")
	s.Wait()

	require.Equal(t, 0, s.State().Count)
}

func TestActionName(t *testing.T) {
	require.Equal(t, "tallyAction", ActionName(tallyAction("inc")))
	require.Equal(t, "tally", ActionName(&tally{}))
	require.Equal(t, "int", ActionName(3))
}

type wrapped struct {
	inner tallyAction
}

func TestMapWrapsChildEffects(t *testing.T) {
	called := false
	child := []Effect[tallyAction]{
		Send[tallyAction]("inc"),
		Run("child-task", func(context.Context) tallyAction { return "done" }),
		Do[tallyAction](func() { called = true }),
	}

	mapped := Map(child, func(a tallyAction) wrapped { return wrapped{inner: a} })
	require.Len(t, mapped, 3)
	require.Equal(t, []wrapped{{inner: "inc"}}, mapped[0].actions)
	require.NotNil(t, mapped[1].task)
	require.Equal(t, "child-task", mapped[1].task.name)
	require.Equal(t, wrapped{inner: "done"}, mapped[1].task.run(context.Background()))
	mapped[2].do()
	require.True(t, called)

	require.Nil(t, Map[tallyAction, wrapped](nil, nil))
}
