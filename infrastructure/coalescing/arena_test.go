package coalescing

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_CoalescesIdenticalSignatures(t *testing.T) {
	arena := NewArena[string](5 * time.Second)

	var executions atomic.Int32
	gate := make(chan struct{})
	started := make(chan struct{})

	fn := func() (string, error) {
		executions.Add(1)
		close(started)
		<-gate
		return "resultado", nil
	}

	var wg sync.WaitGroup
	results := make([]string, 4)

	// Primeiro chamador executa fn; os demais aderem à operação em voo
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = arena.Do(context.Background(), "metrics:2024-01-01:2024-01-07:false", fn)
	}()

	<-started

	for i := 1; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = arena.Do(context.Background(), "metrics:2024-01-01:2024-01-07:false", fn)
		}(i)
	}

	// Espera os aderentes registrarem antes de liberar o desfecho
	assert.Eventually(t, func() bool {
		return arena.Pending() == 1
	}, time.Second, 5*time.Millisecond)

	close(gate)
	wg.Wait()

	assert.Equal(t, int32(1), executions.Load(), "apenas uma execução para a mesma assinatura")
	for _, result := range results {
		assert.Equal(t, "resultado", result)
	}
	assert.Equal(t, 0, arena.Pending())
}

func TestArena_DifferentSignaturesRunIndependently(t *testing.T) {
	arena := NewArena[int](5 * time.Second)

	var executions atomic.Int32
	fn := func(v int) func() (int, error) {
		return func() (int, error) {
			executions.Add(1)
			return v, nil
		}
	}

	a, err := arena.Do(context.Background(), "metrics:2024-01-01:2024-01-07:false", fn(1))
	require.NoError(t, err)

	b, err := arena.Do(context.Background(), "metrics:2024-01-01:2024-01-07:true", fn(2))
	require.NoError(t, err)

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.Equal(t, int32(2), executions.Load())
}

func TestArena_ErrorIsSharedWithJoiners(t *testing.T) {
	arena := NewArena[string](5 * time.Second)

	feedErr := errors.New("feed indisponível")
	gate := make(chan struct{})
	started := make(chan struct{})

	var firstErr, secondErr error

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = arena.Do(context.Background(), "revenue", func() (string, error) {
			close(started)
			<-gate
			return "", feedErr
		})
	}()

	<-started

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, secondErr = arena.Do(context.Background(), "revenue", func() (string, error) {
			t.Error("segunda execução não deveria acontecer")
			return "", nil
		})
	}()

	assert.Eventually(t, func() bool {
		return arena.Pending() == 1
	}, time.Second, 5*time.Millisecond)

	close(gate)
	wg.Wait()

	assert.Equal(t, feedErr, firstErr)
	assert.Equal(t, feedErr, secondErr)
}

func TestArena_EntryIsEvictedAfterSettling(t *testing.T) {
	arena := NewArena[int](5 * time.Second)

	var executions atomic.Int32
	fn := func() (int, error) {
		executions.Add(1)
		return 7, nil
	}

	_, err := arena.Do(context.Background(), "activity", fn)
	require.NoError(t, err)

	// A próxima consulta da mesma assinatura dispara uma execução nova
	_, err = arena.Do(context.Background(), "activity", fn)
	require.NoError(t, err)

	assert.Equal(t, int32(2), executions.Load())
	assert.Equal(t, 0, arena.Pending())
}

func TestArena_CallerContextBoundsTheWait(t *testing.T) {
	arena := NewArena[string](5 * time.Second)

	gate := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_, _ = arena.Do(context.Background(), "metrics", func() (string, error) {
			close(started)
			<-gate
			return "tarde demais", nil
		})
	}()

	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := arena.Do(ctx, "metrics", func() (string, error) {
		t.Error("aderente não deveria executar fn")
		return "", nil
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(gate)
}

func TestArena_TTLEvictsNeverSettlingOperation(t *testing.T) {
	arena := NewArena[int](30 * time.Millisecond)

	started := make(chan struct{})
	block := make(chan struct{})
	defer close(block)

	go func() {
		_, _ = arena.Do(context.Background(), "metrics", func() (int, error) {
			close(started)
			<-block
			return 0, nil
		})
	}()

	<-started

	// Após o ttl a entrada órfã sai do mapa e novos chamadores seguem em frente
	assert.Eventually(t, func() bool {
		return arena.Pending() == 0
	}, time.Second, 5*time.Millisecond)

	result, err := arena.Do(context.Background(), "metrics", func() (int, error) {
		return 99, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 99, result)
}
