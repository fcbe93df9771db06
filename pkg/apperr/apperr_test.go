package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundErrorMessage(t *testing.T) {
	err := NewNotFound("Teacher", "id", 5)

	want := "Teacher with id = 5 was not found"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}
}

func TestNotFoundErrorCompoundKeys(t *testing.T) {
	err := NewNotFoundMulti("GroupTeacher",
		KeyValue{Key: "group_id", Value: 1},
		KeyValue{Key: "teacher_id", Value: 2},
	)

	want := "GroupTeacher with group_id = 1, teacher_id = 2 was not found"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestConflictError(t *testing.T) {
	err := NewConflict("title %q is already taken", "CS-101")

	if err.Error() != `title "CS-101" is already taken` {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, ErrConflict) {
		t.Error("ConflictError should match ErrConflict")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("ConflictError should not match ErrNotFound")
	}
}

func TestStoreErrorKeepsCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Store(cause)

	if !errors.Is(err, ErrStoreUnavailable) {
		t.Error("StoreError should match ErrStoreUnavailable")
	}
	if !errors.Is(err, cause) {
		t.Error("StoreError should keep its cause in the chain")
	}
	if Store(nil) != nil {
		t.Error("Store(nil) should stay nil")
	}
}
