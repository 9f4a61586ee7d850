package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"weird-animal-quiz/internal/app"
	"weird-animal-quiz/internal/domain"
	"weird-animal-quiz/internal/infra/memory"
)

func newTestHandler() *WSHandler {
	banks := memory.NewBankRepository(memory.NewStaticBankLoader(map[string]domain.QuestionBank{
		"weird-animals": sampleBank(),
	}), time.Minute)
	service := app.NewQuizService(memory.NewSessionStore(), banks, memory.NewSnapshotStore())
	return NewWSHandler(service)
}

func dialQuiz(t *testing.T, handler *WSHandler) *websocket.Conn {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", handler.ServeWS)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	u := "ws" + server.URL[len("http"):] + "/ws?bank=weird-animals"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestAnswerFlow(t *testing.T) {
	conn := dialQuiz(t, newTestHandler())

	// Session id and the initial state frame arrive first, in either order.
	sawSession := false
	sawState := false
	for i := 0; i < 3 && !(sawSession && sawState); i++ {
		typ, _ := readNext(conn, t, "")
		switch typ {
		case "session":
			sawSession = true
		case "state":
			sawState = true
		}
	}
	if !sawSession || !sawState {
		t.Fatalf("expected session and state frames, got session=%v state=%v", sawSession, sawState)
	}

	writeMsg(conn, t, "answer", map[string]any{"answerId": "a2", "timeSpent": 5})

	feedbackSeen := false
	for i := 0; i < 4 && !feedbackSeen; i++ {
		typ, payload := readNext(conn, t, "")
		if typ == "feedback" {
			feedbackSeen = true
			if payload["correct"] != true {
				t.Fatalf("expected correct answer, got %+v", payload)
			}
			if payload["correctAnswerId"] != "a2" {
				t.Fatalf("expected revealed answer, got %+v", payload)
			}
		}
	}
	if !feedbackSeen {
		t.Fatalf("expected feedback frame")
	}

	// Advancing past the single question completes the quiz with results.
	writeMsg(conn, t, "next", map[string]any{})
	resultsSeen := false
	for i := 0; i < 4 && !resultsSeen; i++ {
		typ, payload := readNext(conn, t, "")
		if typ == "results" {
			resultsSeen = true
			results, ok := payload["results"].(map[string]any)
			if !ok {
				t.Fatalf("malformed results payload %+v", payload)
			}
			if results["percentage"] != float64(100) {
				t.Fatalf("expected 100%%, got %v", results["percentage"])
			}
		}
	}
	if !resultsSeen {
		t.Fatalf("expected results frame")
	}
}

func TestHintFrame(t *testing.T) {
	conn := dialQuiz(t, newTestHandler())
	drainStartup(conn, t)

	writeMsg(conn, t, "hint", map[string]any{})
	for i := 0; i < 4; i++ {
		typ, payload := readNext(conn, t, "")
		if typ != "hint" {
			continue
		}
		kind, _ := payload["kind"].(string)
		if kind != "eliminate" && kind != "clue" {
			t.Fatalf("unexpected hint kind %q", kind)
		}
		if kind == "eliminate" && payload["eliminatedAnswerId"] == "a2" {
			t.Fatalf("hint eliminated the correct answer")
		}
		return
	}
	t.Fatalf("expected hint frame")
}

func TestUnsupportedMessage(t *testing.T) {
	conn := dialQuiz(t, newTestHandler())
	drainStartup(conn, t)

	writeMsg(conn, t, "dance", map[string]any{})
	for i := 0; i < 4; i++ {
		typ, payload := readNext(conn, t, "")
		if typ == "error" {
			if payload["kind"] != string(domain.KindValidation) {
				t.Fatalf("expected validation kind, got %+v", payload)
			}
			return
		}
	}
	t.Fatalf("expected error frame")
}

// With a very fast clock the countdown expires and the server submits the
// timed-out response on the client's behalf.
func TestClockDrivesTimeout(t *testing.T) {
	handler := newTestHandler().WithTickInterval(time.Millisecond)
	conn := dialQuiz(t, handler)
	drainStartup(conn, t)

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		typ, payload := readNext(conn, t, "")
		if typ == "feedback" {
			if payload["timedOut"] != true || payload["correct"] != false {
				t.Fatalf("expected timed-out feedback, got %+v", payload)
			}
			return
		}
	}
	t.Fatalf("expected timeout feedback before deadline")
}

func TestResetThenStartRestartsRun(t *testing.T) {
	conn := dialQuiz(t, newTestHandler())
	drainStartup(conn, t)

	writeMsg(conn, t, "reset", map[string]any{})
	emptySeen := false
	for i := 0; i < 4 && !emptySeen; i++ {
		typ, payload := readNext(conn, t, "")
		if typ == "state" && payload["question"] == nil {
			emptySeen = true
		}
	}
	if !emptySeen {
		t.Fatalf("expected empty state after reset")
	}

	writeMsg(conn, t, "start", map[string]any{})
	for i := 0; i < 4; i++ {
		typ, payload := readNext(conn, t, "")
		if typ != "state" {
			continue
		}
		question, ok := payload["question"].(map[string]any)
		if !ok {
			continue
		}
		if question["id"] != "q1" {
			t.Fatalf("expected restart on first question, got %+v", question)
		}
		return
	}
	t.Fatalf("expected restarted state frame")
}

// Once the writer goroutine is gone, frame delivery must abort instead of
// blocking the read loop on a full buffer.
func TestSendAbortsAfterWriterExit(t *testing.T) {
	send := make(chan outboundMessage[any]) // nobody draining
	writerDone := make(chan struct{})
	close(writerDone)

	delivered := make(chan bool, 1)
	go func() {
		delivered <- trySend(send, writerDone, outboundMessage[any]{Type: "state"})
	}()

	select {
	case ok := <-delivered:
		if ok {
			t.Fatalf("expected delivery to abort after writer exit")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("send blocked despite dead writer")
	}
}

func drainStartup(conn *websocket.Conn, t *testing.T) {
	t.Helper()
	for i := 0; i < 2; i++ {
		readNext(conn, t, "")
	}
}

func writeMsg(conn *websocket.Conn, t *testing.T, typ string, payload map[string]any) {
	t.Helper()
	if err := conn.WriteJSON(map[string]any{"type": typ, "payload": payload}); err != nil {
		t.Fatalf("write %s: %v", typ, err)
	}
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s", expect, msg.Type)
	}
	return msg.Type, msg.Payload
}

func sampleBank() domain.QuestionBank {
	return domain.QuestionBank{
		ID:    "weird-animals",
		Title: "Weird Animal Quiz",
		Questions: []domain.Question{
			{
				ID:         "q1",
				Difficulty: domain.Easy,
				Text:       "How many hearts does an octopus have?",
				Answers: []domain.Answer{
					{ID: "a1", Text: "One", Correct: false},
					{ID: "a2", Text: "Three", Correct: true},
					{ID: "a3", Text: "Eight", Correct: false},
				},
				Explanation: "Two gill hearts plus a systemic heart.",
				FunFact:     "The main heart stops when an octopus swims.",
			},
		},
	}
}
