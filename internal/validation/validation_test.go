package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolioapi/internal/model"
)

func TestStructValid(t *testing.T) {
	in := model.ContactCreate{
		Name:    "John Doe",
		Email:   "john.doe@example.com",
		Subject: "Test",
		Message: "Hello",
	}
	assert.Nil(t, Struct(in))
}

func TestStructMissingRequired(t *testing.T) {
	in := model.ContactCreate{Email: "john.doe@example.com"}

	errs := Struct(in)
	assert.Len(t, errs, 3)

	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"name", "subject", "message"}, fields)
	assert.Equal(t, "is required", errs[0].Message)
}

func TestStructMalformedEmail(t *testing.T) {
	in := model.ContactCreate{
		Name:    "John Doe",
		Email:   "not-an-email",
		Subject: "Test",
		Message: "Hello",
	}

	errs := Struct(in)
	assert.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "must be a valid email address", errs[0].Message)
}

func TestStructNestedEmail(t *testing.T) {
	upd := model.ProfileUpdate{
		Personal: &model.PersonalInfo{
			Name:  "Jane",
			Title: "Analyst",
			Email: "bad-address",
		},
	}

	errs := Struct(upd)
	assert.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}
