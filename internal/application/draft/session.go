// Package draft implementa la sesión de edición de stock multi-sede: el
// conjunto de líneas por sede de un producto, sus invariantes de conjunto y el
// commit por lotes contra la persistencia.
package draft

import (
	"sync"

	"github.com/dreyes/sedestock-api/internal/domain/stockdraft"
)

// Session es el borrador de stock de un producto. Es dueña exclusiva de sus
// líneas; el mutex cubre el acceso concurrente desde handlers HTTP.
type Session struct {
	ID          string
	ProductID   int64
	ProductName string

	mu    sync.Mutex
	lines map[string]stockdraft.Line // key -> línea
	order []string                   // claves en orden de inserción
	sedes map[int64]string           // sede -> key, para rechazar duplicados
}

func newSession(id string, productID int64, productName string) *Session {
	return &Session{
		ID:          id,
		ProductID:   productID,
		ProductName: productName,
		lines:       make(map[string]stockdraft.Line),
		sedes:       make(map[int64]string),
	}
}

// HasSede indica si la sede ya tiene línea en el borrador.
func (s *Session) HasSede(sedeID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sedes[sedeID]
	return ok
}

// AddLine agrega la línea al borrador. Devuelve false si la sede ya estaba
// (el borrador queda intacto).
func (s *Session) AddLine(line stockdraft.Line) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sedes[line.SedeID]; ok {
		return false
	}
	s.lines[line.Key] = line
	s.order = append(s.order, line.Key)
	s.sedes[line.SedeID] = line.Key
	return true
}

// UpdateField aplica la edición vía el resolutor de rangos y reemplaza la
// línea. Devuelve ok=false si la clave no existe.
func (s *Session) UpdateField(key string, field stockdraft.Field, value int64, lim stockdraft.Limits) (stockdraft.Line, []stockdraft.Adjustment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line, ok := s.lines[key]
	if !ok {
		return stockdraft.Line{}, nil, false
	}
	updated, adjs := stockdraft.ApplyEdit(line, field, value, lim)
	s.lines[key] = updated
	return updated, adjs, true
}

// RemoveLine elimina la línea; no afecta a las demás.
func (s *Session) RemoveLine(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	line, ok := s.lines[key]
	if !ok {
		return false
	}
	delete(s.lines, key)
	delete(s.sedes, line.SedeID)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Lines devuelve una copia de las líneas en orden de inserción.
func (s *Session) Lines() []stockdraft.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]stockdraft.Line, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.lines[k])
	}
	return out
}

// LineIssue asocia un problema de validación a su línea.
type LineIssue struct {
	Key    string
	SedeID int64
	Issue  stockdraft.Issue
}

// ValidateAll devuelve los problemas de todas las líneas. Vacío si y solo si
// cada línea cumple sus invariantes de completitud y rango.
func (s *Session) ValidateAll(lim stockdraft.Limits) []LineIssue {
	s.mu.Lock()
	defer s.mu.Unlock()
	var issues []LineIssue
	for _, k := range s.order {
		line := s.lines[k]
		for _, is := range line.Validate(lim) {
			issues = append(issues, LineIssue{Key: line.Key, SedeID: line.SedeID, Issue: is})
		}
	}
	return issues
}

// removeCommitted borra las líneas confirmadas (post commit parcial o total).
func (s *Session) removeCommitted(keys []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		line, ok := s.lines[key]
		if !ok {
			continue
		}
		delete(s.lines, key)
		delete(s.sedes, line.SedeID)
	}
	kept := s.order[:0]
	for _, k := range s.order {
		if _, ok := s.lines[k]; ok {
			kept = append(kept, k)
		}
	}
	s.order = kept
}

// Empty indica si el borrador no tiene líneas.
func (s *Session) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}
