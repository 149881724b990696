package http

import (
	"strings"
	"sync"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/catalog"
)

// StoreLocks serializa las corridas por tienda dentro del proceso.
// Dos ingestas de la misma tienda en paralelo podrían podar lo que la otra acaba de escribir.
type StoreLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStoreLocks construye el registro de locks.
func NewStoreLocks() *StoreLocks {
	return &StoreLocks{locks: make(map[string]*sync.Mutex)}
}

// TryLock toma el lock de la tienda sin bloquear. Devuelve la función de liberación, o
// ok=false si ya hay una corrida en curso.
func (l *StoreLocks) TryLock(store string) (unlock func(), ok bool) {
	key := strings.ToUpper(catalog.CollapseSpaces(store))
	l.mu.Lock()
	m, exists := l.locks[key]
	if !exists {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()
	if !m.TryLock() {
		return nil, false
	}
	return m.Unlock, true
}
