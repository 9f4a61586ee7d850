package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"weird-animal-quiz/internal/app"
	"weird-animal-quiz/internal/domain"
	"weird-animal-quiz/internal/hint"
	"weird-animal-quiz/internal/quiz"
)

// WSHandler bridges the quiz service to browser clients. It owns the
// one-second countdown clock for each connection: the state machine only
// records timer values, so the ticker here is the thing that drives them,
// and it stops on pause and on connection teardown.
type WSHandler struct {
	service     *app.QuizService
	upgrader    websocket.Upgrader
	tickEvery   time.Duration
	defaultBank string
}

func NewWSHandler(service *app.QuizService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		tickEvery: time.Second,
	}
}

// WithTickInterval shortens the clock for tests.
func (h *WSHandler) WithTickInterval(d time.Duration) *WSHandler {
	h.tickEvery = d
	return h
}

// WithDefaultBank sets the bank served when the client does not pick one.
func (h *WSHandler) WithDefaultBank(bankID string) *WSHandler {
	h.defaultBank = bankID
	return h
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	AnswerID  string `json:"answerId"`
	TimeSpent int    `json:"timeSpent"`
}

type startPayload struct {
	Bank string `json:"bank"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type sessionPayload struct {
	SessionID string `json:"sessionId"`
}

type hintPayload struct {
	Kind               string `json:"kind"`
	EliminatedAnswerID string `json:"eliminatedAnswerId,omitempty"`
	Clue               string `json:"clue,omitempty"`
	Message            string `json:"message"`
}

type errorPayload struct {
	Message string           `json:"message"`
	Kind    domain.ErrorKind `json:"kind"`
}

// ServeWS upgrades the request and runs one quiz connection: client actions
// in, state/feedback/hint/results frames out.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	bankID := r.URL.Query().Get("bank")
	if bankID == "" {
		bankID = h.defaultBank
	}
	if bankID == "" {
		http.Error(w, "missing bank", http.StatusBadRequest)
		return
	}
	sessionID := r.URL.Query().Get("session")

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	sessionID, snap, err := h.service.Start(ctx, sessionID, bankID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorOf(err)})
		return
	}

	updates, cancel, err := h.service.Subscribe(ctx, sessionID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorOf(err)})
		return
	}
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})
	tickerDone := make(chan struct{})

	var paused atomic.Bool
	paused.Store(snap.Paused)

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(updatesDone)
		for {
			select {
			case update, ok := <-updates:
				if !ok {
					return
				}
				paused.Store(update.Paused || update.Complete)
				select {
				case send <- outboundMessage[any]{Type: "state", Payload: update}:
				case <-writerDone:
					return
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	// The countdown clock. Ticks are suppressed while the store is paused and
	// the ticker dies with the connection.
	go func() {
		defer close(tickerDone)
		ticker := time.NewTicker(h.tickEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if paused.Load() {
					continue
				}
				tickSnap, expired, err := h.service.Tick(ctx, sessionID)
				if err != nil {
					select {
					case send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error(), Kind: domain.KindTimer}}:
					case <-writerDone:
					case <-closeSignals:
					}
					return
				}
				paused.Store(tickSnap.Paused || tickSnap.Complete)
				if expired {
					h.submitTimeout(ctx, sessionID, send, writerDone, closeSignals)
				}
			case <-closeSignals:
				return
			}
		}
	}()

	trySend(send, writerDone, outboundMessage[any]{Type: "session", Payload: sessionPayload{SessionID: sessionID}})

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		h.handleMessage(ctx, sessionID, bankID, inbound, send, writerDone)
	}

	close(closeSignals)
	<-tickerDone
	<-updatesDone
	close(send)
	<-writerDone
}

func (h *WSHandler) handleMessage(ctx context.Context, sessionID, bankID string, inbound inboundMessage, send chan<- outboundMessage[any], writerDone <-chan struct{}) {
	switch inbound.Type {
	case "start":
		var payload startPayload
		if len(inbound.Payload) > 0 {
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				trySend(send, writerDone, outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid start payload", Kind: domain.KindValidation}})
				return
			}
		}
		if payload.Bank == "" {
			payload.Bank = bankID
		}
		if _, _, err := h.service.Start(ctx, sessionID, payload.Bank); err != nil {
			trySend(send, writerDone, outboundMessage[any]{Type: "error", Payload: errorOf(err)})
		}

	case "answer":
		var payload answerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			trySend(send, writerDone, outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid answer payload", Kind: domain.KindValidation}})
			return
		}
		fb, _, err := h.service.SubmitAnswer(ctx, sessionID, payload.AnswerID, payload.TimeSpent)
		if err != nil {
			trySend(send, writerDone, outboundMessage[any]{Type: "error", Payload: errorOf(err)})
			return
		}
		trySend(send, writerDone, outboundMessage[any]{Type: "feedback", Payload: fb})

	case "hint":
		generated, _, err := h.service.UseHint(ctx, sessionID)
		if err != nil {
			trySend(send, writerDone, outboundMessage[any]{Type: "error", Payload: errorOf(err)})
			return
		}
		trySend(send, writerDone, outboundMessage[any]{Type: "hint", Payload: hintOf(generated)})

	case "next":
		snap, err := h.service.NextQuestion(ctx, sessionID)
		if err != nil {
			trySend(send, writerDone, outboundMessage[any]{Type: "error", Payload: errorOf(err)})
			return
		}
		if snap.Complete {
			view, err := h.service.Results(ctx, sessionID)
			if err != nil {
				trySend(send, writerDone, outboundMessage[any]{Type: "error", Payload: errorOf(err)})
				return
			}
			trySend(send, writerDone, outboundMessage[any]{Type: "results", Payload: view})
		}

	case "pause":
		if _, err := h.service.Pause(ctx, sessionID); err != nil {
			trySend(send, writerDone, outboundMessage[any]{Type: "error", Payload: errorOf(err)})
		}

	case "resume":
		if _, err := h.service.Resume(ctx, sessionID); err != nil {
			trySend(send, writerDone, outboundMessage[any]{Type: "error", Payload: errorOf(err)})
		}

	case "reset":
		if _, err := h.service.Reset(ctx, sessionID); err != nil {
			trySend(send, writerDone, outboundMessage[any]{Type: "error", Payload: errorOf(err)})
		}

	default:
		trySend(send, writerDone, outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type", Kind: domain.KindValidation}})
	}
}

// submitTimeout records the sentinel response when the clock runs out.
func (h *WSHandler) submitTimeout(ctx context.Context, sessionID string, send chan<- outboundMessage[any], writerDone, closeSignals <-chan struct{}) {
	fb, _, err := h.service.SubmitAnswer(ctx, sessionID, domain.TimedOutAnswerID, quiz.QuestionSeconds)
	if err != nil {
		return
	}
	select {
	case send <- outboundMessage[any]{Type: "feedback", Payload: fb}:
	case <-writerDone:
	case <-closeSignals:
	}
}

// trySend delivers a frame unless the writer goroutine has already exited, so
// a dead connection can never wedge the read loop on a full buffer.
func trySend(send chan<- outboundMessage[any], writerDone <-chan struct{}, msg outboundMessage[any]) bool {
	select {
	case send <- msg:
		return true
	case <-writerDone:
		return false
	}
}

func hintOf(generated hint.Hint) hintPayload {
	switch v := generated.(type) {
	case hint.EliminateWrongAnswer:
		return hintPayload{Kind: "eliminate", EliminatedAnswerID: v.AnswerID, Message: v.Message}
	case hint.ProvideClue:
		return hintPayload{Kind: "clue", Clue: v.Clue, Message: v.Message}
	default:
		return hintPayload{}
	}
}

func errorOf(err error) errorPayload {
	return errorPayload{Message: err.Error(), Kind: domain.KindOf(err)}
}
