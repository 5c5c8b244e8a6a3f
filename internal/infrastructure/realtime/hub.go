// Package realtime implementa la difusión de eventos a los clientes conectados.
//
// El Hub mantiene la lista de suscriptores; cada uno tiene un buffer acotado.
// Publicar nunca bloquea: si el buffer de un suscriptor está lleno, ese
// suscriptor pierde el mensaje y el resto lo recibe igual.
package realtime

import (
	"sync"
	"sync/atomic"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/jhoicas/retail-dashboard-api/internal/application/ports"
	"github.com/jhoicas/retail-dashboard-api/pkg/logger"
)

// Message trama enviada a los clientes: {"event": ..., "data": ...}.
type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Subscriber un cliente conectado.
type Subscriber struct {
	id      string
	ch      chan []byte
	dropped atomic.Int64
}

// ID identificador del suscriptor.
func (s *Subscriber) ID() string { return s.id }

// Messages canal de tramas JSON; se cierra al desuscribir.
func (s *Subscriber) Messages() <-chan []byte { return s.ch }

// Dropped mensajes descartados por buffer lleno.
func (s *Subscriber) Dropped() int64 { return s.dropped.Load() }

// Hub difusor fan-out.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]*Subscriber
	buffer int
	closed bool
	log    *logger.Logger
}

var _ ports.Broadcaster = (*Hub)(nil)

// NewHub construye el hub; buffer es la cola por suscriptor.
func NewHub(buffer int, log *logger.Logger) *Hub {
	return &Hub{
		subs:   make(map[string]*Subscriber),
		buffer: max(1, buffer),
		log:    log,
	}
}

// Subscribe registra un suscriptor nuevo. Tras Close devuelve uno ya cerrado.
func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{id: uuid.NewString(), ch: make(chan []byte, h.buffer)}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(sub.ch)
		return sub
	}
	h.subs[sub.id] = sub
	h.log.Debug().Str("subscriber", sub.id).Int("clients", len(h.subs)).Msg("cliente conectado")
	return sub
}

// Unsubscribe elimina y cierra el suscriptor. Es idempotente.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[sub.id]; !ok {
		return
	}
	delete(h.subs, sub.id)
	close(sub.ch)
	h.log.Debug().Str("subscriber", sub.id).Int("clients", len(h.subs)).Msg("cliente desconectado")
}

// Broadcast codifica el evento una vez y lo encola para todos los suscriptores.
func (h *Hub) Broadcast(event string, payload any) {
	frame, err := Encode(event, payload)
	if err != nil {
		h.log.Error().Err(err).Str("event", event).Msg("codificar evento")
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs {
		h.enqueue(sub, event, frame)
	}
}

// Send encola un evento solo para sub (p. ej. el estado inicial al conectar).
func (h *Hub) Send(sub *Subscriber, event string, payload any) error {
	frame, err := Encode(event, payload)
	if err != nil {
		return err
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, ok := h.subs[sub.id]; ok {
		h.enqueue(sub, event, frame)
	}
	return nil
}

// enqueue requiere h.mu tomado en lectura: Unsubscribe no puede cerrar el canal a la vez.
func (h *Hub) enqueue(sub *Subscriber, event string, frame []byte) {
	select {
	case sub.ch <- frame:
	default:
		n := sub.dropped.Add(1)
		h.log.Warn().Str("subscriber", sub.id).Str("event", event).Int64("dropped", n).Msg("buffer lleno, evento descartado")
	}
}

// Count suscriptores activos.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close desconecta a todos los suscriptores; los Subscribe posteriores nacen cerrados.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, sub := range h.subs {
		delete(h.subs, id)
		close(sub.ch)
	}
	h.closed = true
}

// Encode serializa una trama de evento.
func Encode(event string, payload any) ([]byte, error) {
	return json.Marshal(Message{Event: event, Data: payload})
}
