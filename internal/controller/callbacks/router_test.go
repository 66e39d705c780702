package callbacks

import (
	"reflect"
	"testing"

	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/admin"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/booking"
	"github.com/stretchr/testify/assert"
)

func funcPointer(f callbackFunc) uintptr {
	return reflect.ValueOf(f).Pointer()
}

func TestMatch(t *testing.T) {
	tests := []struct {
		data string
		want callbackFunc
	}{
		{"book_service:s1", booking.HandleSelectService},
		{"book_staff:st1", booking.HandleSelectStaff},
		{"appt_confirm:a1", admin.HandleConfirm},
		{"appt_complete:a1", admin.HandleComplete},
		{"appt_cancel:a1", admin.HandleCancel},
		{"appt_review:a1", admin.HandleReview},
		{"svc_delete:s1", admin.HandleDeleteService},
		{"staff_delete:st1", admin.HandleDeleteStaff},
		{"exam_view:e1", admin.HandleViewExam},
		{"exam_delete:e1", admin.HandleDeleteExam},
		{"course_delete:c1", admin.HandleDeleteCourse},
		{"study_delete:m1", admin.HandleDeleteStudySubject},
	}
	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			got := match(tt.data)
			if assert.NotNil(t, got) {
				assert.Equal(t, funcPointer(tt.want), funcPointer(got))
			}
		})
	}

	assert.Nil(t, match("unknown:1"))
	assert.Nil(t, match("cancel_dialog"))
}
