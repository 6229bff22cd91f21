package realtime

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"household-services/internal/domain/notification"
)

var (
	ErrRegistryClosed = errors.New("realtime registry closed")
	ErrInvalidSubject = errors.New("invalid subject")
)

// Conn is one live client connection as the registry sees it.
type Conn interface {
	ID() string
	Send(frame []byte) error
	Close() error
}

type Stats struct {
	Connections int `json:"connections"`
	Subjects    int `json:"subjects"`
}

// Registry maps subjects to their live connections. All reads and writes go through mu;
// nothing is sent or closed while it is held.
type Registry struct {
	mu        sync.RWMutex
	conns     map[string]Conn
	subjects  map[string]map[string]Conn
	subjectOf map[string]string
	closed    bool
}

func NewRegistry() *Registry {
	return &Registry{
		conns:     make(map[string]Conn),
		subjects:  make(map[string]map[string]Conn),
		subjectOf: make(map[string]string),
	}
}

// Attach tracks a connection that has not joined a subject yet. It already receives broadcasts.
func (r *Registry) Attach(conn Conn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRegistryClosed
	}
	r.conns[conn.ID()] = conn
	return nil
}

// Subscribe is idempotent. A connection already subscribed elsewhere is moved, so it
// belongs to at most one subject.
func (r *Registry) Subscribe(subjectID string, conn Conn) error {
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" || subjectID == notification.Broadcast {
		return ErrInvalidSubject
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRegistryClosed
	}

	connID := conn.ID()
	if current, ok := r.subjectOf[connID]; ok {
		if current == subjectID {
			return nil
		}
		r.removeFromSubjectLocked(current, connID)
	}

	set, ok := r.subjects[subjectID]
	if !ok {
		set = make(map[string]Conn)
		r.subjects[subjectID] = set
	}
	set[connID] = conn
	r.subjectOf[connID] = subjectID
	r.conns[connID] = conn
	return nil
}

// Unsubscribe forgets the connection entirely. Unknown ids are a no-op.
func (r *Registry) Unsubscribe(connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, known := r.conns[connID]
	if subjectID, ok := r.subjectOf[connID]; ok {
		r.removeFromSubjectLocked(subjectID, connID)
		known = true
	}
	delete(r.conns, connID)
	return known
}

func (r *Registry) removeFromSubjectLocked(subjectID, connID string) {
	delete(r.subjectOf, connID)
	set := r.subjects[subjectID]
	delete(set, connID)
	if len(set) == 0 {
		delete(r.subjects, subjectID)
	}
}

// ConnectionsFor never fails; a subject nobody listens to has no connections.
func (r *Registry) ConnectionsFor(subjectID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.subjects[subjectID]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r *Registry) SubjectOf(connID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subjectID, ok := r.subjectOf[connID]
	return subjectID, ok
}

func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return Stats{
		Connections: len(r.conns),
		Subjects:    len(r.subjects),
	}
}

// snapshot copies the recipients under the read lock so delivery happens without it.
func (r *Registry) snapshot(target string) []Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var source map[string]Conn
	if target == notification.Broadcast {
		source = r.conns
	} else {
		source = r.subjects[target]
	}

	out := make([]Conn, 0, len(source))
	for _, c := range source {
		out = append(out, c)
	}
	return out
}

// Close clears every entry and closes the connections. Reconnecting clients must join again.
func (r *Registry) Close() {
	r.mu.Lock()
	conns := make([]Conn, 0, len(r.conns))
	for _, c := range r.conns {
		conns = append(conns, c)
	}
	r.conns = make(map[string]Conn)
	r.subjects = make(map[string]map[string]Conn)
	r.subjectOf = make(map[string]string)
	r.closed = true
	r.mu.Unlock()

	for _, c := range conns {
		_ = c.Close()
	}
}
