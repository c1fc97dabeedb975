package models

import (
	"errors"
	"testing"
)

func newPendingRequest() *Request {
	return &Request{
		ID:         1,
		SenderID:   10,
		ReceiverID: 20,
		Status:     RequestStatusPending,
	}
}

func TestAccept(t *testing.T) {
	r := newPendingRequest()

	if err := r.Accept(20); err != nil {
		t.Fatalf("receiver accept failed: %v", err)
	}
	if r.Status != RequestStatusAccepted {
		t.Errorf("expected status accepted, got %s", r.Status)
	}
}

func TestAcceptBySenderRejected(t *testing.T) {
	r := newPendingRequest()

	if err := r.Accept(10); !errors.Is(err, ErrNotReceiver) {
		t.Errorf("expected ErrNotReceiver, got %v", err)
	}
	if r.Status != RequestStatusPending {
		t.Errorf("status changed on failed accept: %s", r.Status)
	}
}

func TestAcceptByStrangerRejected(t *testing.T) {
	r := newPendingRequest()

	if err := r.Accept(99); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("expected ErrNotParticipant, got %v", err)
	}
}

func TestAcceptNonPending(t *testing.T) {
	for _, status := range []RequestStatus{
		RequestStatusAccepted,
		RequestStatusRejected,
		RequestStatusCancelled,
		RequestStatusCompleted,
	} {
		r := newPendingRequest()
		r.Status = status
		if err := r.Accept(20); !errors.Is(err, ErrNotPending) {
			t.Errorf("status %s: expected ErrNotPending, got %v", status, err)
		}
	}
}

func TestReject(t *testing.T) {
	r := newPendingRequest()

	if err := r.Reject(20); err != nil {
		t.Fatalf("receiver reject failed: %v", err)
	}
	if r.Status != RequestStatusRejected {
		t.Errorf("expected status rejected, got %s", r.Status)
	}
}

func TestRejectBySenderRejected(t *testing.T) {
	r := newPendingRequest()

	if err := r.Reject(10); !errors.Is(err, ErrNotReceiver) {
		t.Errorf("expected ErrNotReceiver, got %v", err)
	}
}

func TestRejectAfterAccept(t *testing.T) {
	r := newPendingRequest()
	r.Status = RequestStatusAccepted

	if err := r.Reject(20); !errors.Is(err, ErrNotPending) {
		t.Errorf("expected ErrNotPending, got %v", err)
	}
}

func TestCancelByEitherParticipant(t *testing.T) {
	for _, userID := range []uint{10, 20} {
		r := newPendingRequest()
		if err := r.Cancel(userID); err != nil {
			t.Fatalf("user %d cancel failed: %v", userID, err)
		}
		if r.Status != RequestStatusCancelled {
			t.Errorf("expected status cancelled, got %s", r.Status)
		}
	}
}

func TestCancelAccepted(t *testing.T) {
	r := newPendingRequest()
	r.Status = RequestStatusAccepted

	if err := r.Cancel(10); err != nil {
		t.Fatalf("cancel of accepted request failed: %v", err)
	}
	if r.Status != RequestStatusCancelled {
		t.Errorf("expected status cancelled, got %s", r.Status)
	}
}

func TestCancelTerminal(t *testing.T) {
	for _, status := range []RequestStatus{
		RequestStatusRejected,
		RequestStatusCancelled,
		RequestStatusCompleted,
	} {
		r := newPendingRequest()
		r.Status = status
		if err := r.Cancel(10); !errors.Is(err, ErrRequestTerminal) {
			t.Errorf("status %s: expected ErrRequestTerminal, got %v", status, err)
		}
	}
}

func TestCancelByStrangerRejected(t *testing.T) {
	r := newPendingRequest()

	if err := r.Cancel(99); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("expected ErrNotParticipant, got %v", err)
	}
}

func TestConfirmRequiresAccepted(t *testing.T) {
	for _, status := range []RequestStatus{
		RequestStatusPending,
		RequestStatusRejected,
		RequestStatusCancelled,
		RequestStatusCompleted,
	} {
		r := newPendingRequest()
		r.Status = status
		if _, err := r.Confirm(10); !errors.Is(err, ErrNotAccepted) {
			t.Errorf("status %s: expected ErrNotAccepted, got %v", status, err)
		}
		if r.SenderConfirmedReceived || r.ReceiverConfirmedReceived {
			t.Errorf("status %s: confirmation flag set on failed confirm", status)
		}
	}
}

func TestConfirmSingleSideDoesNotComplete(t *testing.T) {
	r := newPendingRequest()
	r.Status = RequestStatusAccepted

	completed, err := r.Confirm(10)
	if err != nil {
		t.Fatalf("sender confirm failed: %v", err)
	}
	if completed {
		t.Error("single confirmation should not complete the swap")
	}
	if r.Status != RequestStatusAccepted {
		t.Errorf("expected status accepted, got %s", r.Status)
	}
	if !r.SenderConfirmedReceived || r.ReceiverConfirmedReceived {
		t.Error("wrong confirmation flags after sender confirm")
	}
}

func TestConfirmBothSidesCompletes(t *testing.T) {
	r := newPendingRequest()
	r.Status = RequestStatusAccepted

	if _, err := r.Confirm(20); err != nil {
		t.Fatalf("receiver confirm failed: %v", err)
	}
	completed, err := r.Confirm(10)
	if err != nil {
		t.Fatalf("sender confirm failed: %v", err)
	}
	if !completed {
		t.Error("second confirmation should complete the swap")
	}
	if r.Status != RequestStatusCompleted {
		t.Errorf("expected status completed, got %s", r.Status)
	}
}

func TestConfirmTwiceRejected(t *testing.T) {
	r := newPendingRequest()
	r.Status = RequestStatusAccepted

	if _, err := r.Confirm(10); err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}
	if _, err := r.Confirm(10); !errors.Is(err, ErrAlreadyConfirmed) {
		t.Errorf("expected ErrAlreadyConfirmed, got %v", err)
	}
}

func TestConfirmByStrangerRejected(t *testing.T) {
	r := newPendingRequest()
	r.Status = RequestStatusAccepted

	if _, err := r.Confirm(99); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("expected ErrNotParticipant, got %v", err)
	}
}

func TestOtherParticipant(t *testing.T) {
	r := newPendingRequest()

	if got := r.OtherParticipant(10); got != 20 {
		t.Errorf("expected 20, got %d", got)
	}
	if got := r.OtherParticipant(20); got != 10 {
		t.Errorf("expected 10, got %d", got)
	}
}

func TestIsParticipant(t *testing.T) {
	r := newPendingRequest()

	if !r.IsParticipant(10) || !r.IsParticipant(20) {
		t.Error("participants not recognized")
	}
	if r.IsParticipant(99) {
		t.Error("stranger recognized as participant")
	}
}

func TestCanMessage(t *testing.T) {
	for _, status := range []RequestStatus{
		RequestStatusPending,
		RequestStatusAccepted,
		RequestStatusRejected,
		RequestStatusCancelled,
	} {
		r := newPendingRequest()
		r.Status = status
		if err := r.CanMessage(10); err != nil {
			t.Errorf("status %s: participant should be able to message: %v", status, err)
		}
	}
}

func TestCanMessageAfterCompletion(t *testing.T) {
	r := newPendingRequest()
	r.Status = RequestStatusCompleted

	if err := r.CanMessage(10); !errors.Is(err, ErrChatClosed) {
		t.Errorf("expected ErrChatClosed, got %v", err)
	}
}

func TestCanMessageStranger(t *testing.T) {
	r := newPendingRequest()

	if err := r.CanMessage(99); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("expected ErrNotParticipant, got %v", err)
	}
}
