package coalescing

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// call é uma operação em voo compartilhada entre chamadores da mesma assinatura
type call[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Arena deduplica requisições idênticas em voo por assinatura canônica de
// consulta. Um chamador que chega enquanto já existe uma operação pendente
// para a mesma assinatura recebe o mesmo desfecho, sem disparar uma segunda
// chamada de rede.
//
// Ciclo de vida explícito: a entrada é inserida ao emitir a chamada e
// removida assim que ela termina, com sucesso ou falha, para que a próxima
// consulta da mesma assinatura busque de novo. Uma operação que nunca
// termina é removida do mapa após o ttl, para que chamadores futuros não fiquem
// bloqueados por uma entrada órfã.
type Arena[T any] struct {
	mu      sync.Mutex
	pending map[string]*call[T]
	ttl     time.Duration
}

// NewArena cria uma Arena com a janela de coalescência informada
func NewArena[T any](ttl time.Duration) *Arena[T] {
	return &Arena[T]{
		pending: make(map[string]*call[T]),
		ttl:     ttl,
	}
}

// Do executa fn para a assinatura key, ou adere a uma execução já em voo.
// O contexto limita apenas a espera do chamador: a operação subjacente
// continua até terminar e seu resultado é compartilhado com quem ainda espera.
func (a *Arena[T]) Do(ctx context.Context, key string, fn func() (T, error)) (T, error) {
	a.mu.Lock()
	if c, ok := a.pending[key]; ok {
		a.mu.Unlock()

		logrus.WithField("signature", key).Debug("Requisição coalescida com operação em voo")
		return a.wait(ctx, c)
	}

	c := &call[T]{done: make(chan struct{})}
	a.pending[key] = c
	a.mu.Unlock()

	// Expira a entrada mesmo que fn nunca retorne
	timer := time.AfterFunc(a.ttl, func() {
		a.evict(key, c)
	})

	c.val, c.err = fn()
	close(c.done)

	timer.Stop()
	a.evict(key, c)

	return a.wait(ctx, c)
}

// Pending retorna o número de operações atualmente em voo
func (a *Arena[T]) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.pending)
}

// wait aguarda o desfecho compartilhado ou o cancelamento do chamador
func (a *Arena[T]) wait(ctx context.Context, c *call[T]) (T, error) {
	select {
	case <-c.done:
		return c.val, c.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// evict remove a entrada do mapa se ela ainda for a operação registrada
// para a assinatura. Quem já aderiu segue esperando pelo canal.
func (a *Arena[T]) evict(key string, c *call[T]) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if current, ok := a.pending[key]; ok && current == c {
		delete(a.pending, key)
	}
}
