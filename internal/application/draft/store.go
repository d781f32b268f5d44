package draft

import "sync"

// Store guarda las sesiones de borrador en memoria, indexadas por su UUID.
// El borrador es estado de sesión de edición: no se persiste; descartar la
// sesión descarta el estado parcial.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore construye el almacén de sesiones.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Put registra la sesión.
func (st *Store) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

// Get devuelve la sesión o nil si no existe.
func (st *Store) Get(id string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}

// Delete elimina la sesión.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}
