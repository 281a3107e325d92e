package forms

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)

func validInput() ContactFormInput {
	return ContactFormInput{
		FullName:        "Maria Mustermann",
		Email:           "maria@example.com",
		ContactReasonID: "1",
	}
}

func TestParse_RequiredFieldsOnly(t *testing.T) {
	data, errs := Parse(validInput(), testNow)
	require.Nil(t, errs)
	require.NotNil(t, data)

	assert.Equal(t, "Maria Mustermann", data.FullName())
	assert.Equal(t, "maria@example.com", data.Email())
	assert.Equal(t, uint(1), data.ContactReasonID())
	assert.Nil(t, data.Phone())
	assert.Nil(t, data.PreferredDatetime())
	assert.Nil(t, data.Message())
}

func TestParse_TrimsAllStringFields(t *testing.T) {
	in := ContactFormInput{
		FullName:        "  Maria Mustermann \n",
		Email:           " maria@example.com ",
		ContactReasonID: " 2 ",
		Phone:           " 030 123456 ",
		Message:         "  Hallo  ",
	}
	data, errs := Parse(in, testNow)
	require.Nil(t, errs)

	assert.Equal(t, "Maria Mustermann", data.FullName())
	assert.Equal(t, "maria@example.com", data.Email())
	assert.Equal(t, uint(2), data.ContactReasonID())
	require.NotNil(t, data.Phone())
	assert.Equal(t, "030 123456", *data.Phone())
	require.NotNil(t, data.Message())
	assert.Equal(t, "Hallo", *data.Message())
}

func TestParse_WhitespaceOnlyOptionalIsAbsent(t *testing.T) {
	in := validInput()
	in.Phone = "   "
	in.Message = "\t\n"
	data, errs := Parse(in, testNow)
	require.Nil(t, errs)
	assert.Nil(t, data.Phone())
	assert.Nil(t, data.Message())
}

func TestParse_RequiredFieldFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ContactFormInput)
		field  string
		msgKey string
	}{
		{"missing name", func(in *ContactFormInput) { in.FullName = "" }, "full_name", "validation.full_name.required"},
		{"whitespace name", func(in *ContactFormInput) { in.FullName = "   " }, "full_name", "validation.full_name.required"},
		{"missing email", func(in *ContactFormInput) { in.Email = "" }, "email", "validation.email.required"},
		{"invalid email", func(in *ContactFormInput) { in.Email = "not-an-email" }, "email", "validation.email.invalid"},
		{"missing reason", func(in *ContactFormInput) { in.ContactReasonID = "" }, "contact_reason_id", "validation.contact_reason_id.required"},
		{"non-numeric reason", func(in *ContactFormInput) { in.ContactReasonID = "abc" }, "contact_reason_id", "validation.contact_reason_id.invalid"},
		{"zero reason", func(in *ContactFormInput) { in.ContactReasonID = "0" }, "contact_reason_id", "validation.contact_reason_id.invalid"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			data, errs := Parse(in, testNow)
			assert.Nil(t, data)
			require.True(t, errs.Any())
			assert.Equal(t, tc.msgKey, errs[tc.field])
		})
	}
}

func TestParse_OptionalFieldBounds(t *testing.T) {
	t.Run("phone too long", func(t *testing.T) {
		in := validInput()
		in.Phone = strings.Repeat("1", MaxPhoneLength+1)
		data, errs := Parse(in, testNow)
		assert.Nil(t, data)
		assert.Equal(t, "validation.phone.too_long", errs["phone"])
	})

	t.Run("phone at limit passes", func(t *testing.T) {
		in := validInput()
		in.Phone = strings.Repeat("1", MaxPhoneLength)
		data, errs := Parse(in, testNow)
		require.Nil(t, errs)
		require.NotNil(t, data.Phone())
	})

	t.Run("message too long", func(t *testing.T) {
		in := validInput()
		in.Message = strings.Repeat("ä", MaxMessageLength+1)
		data, errs := Parse(in, testNow)
		assert.Nil(t, data)
		assert.Equal(t, "validation.message.too_long", errs["message"])
	})

	t.Run("message at limit passes", func(t *testing.T) {
		in := validInput()
		in.Message = strings.Repeat("ä", MaxMessageLength)
		data, errs := Parse(in, testNow)
		require.Nil(t, errs)
		require.NotNil(t, data.Message())
	})
}

func TestParse_PreferredDatetime(t *testing.T) {
	t.Run("future datetime-local accepted", func(t *testing.T) {
		in := validInput()
		in.PreferredDatetime = testNow.Add(48 * time.Hour).Format("2006-01-02T15:04")
		data, errs := Parse(in, testNow)
		require.Nil(t, errs)
		require.NotNil(t, data.PreferredDatetime())
		assert.Equal(t, time.UTC, data.PreferredDatetime().Location())
		assert.True(t, data.PreferredDatetime().After(testNow.UTC()))
	})

	t.Run("rfc3339 accepted", func(t *testing.T) {
		in := validInput()
		in.PreferredDatetime = testNow.Add(time.Hour).Format(time.RFC3339)
		data, errs := Parse(in, testNow)
		require.Nil(t, errs)
		require.NotNil(t, data.PreferredDatetime())
	})

	t.Run("past rejected", func(t *testing.T) {
		in := validInput()
		in.PreferredDatetime = testNow.Add(-time.Minute).Format("2006-01-02T15:04")
		data, errs := Parse(in, testNow)
		assert.Nil(t, data)
		assert.Equal(t, "validation.preferred_datetime.not_future", errs["preferred_datetime"])
	})

	t.Run("exactly now rejected", func(t *testing.T) {
		in := validInput()
		in.PreferredDatetime = testNow.Format("2006-01-02T15:04")
		// Truncate the clock to minute precision so the comparison is exact.
		data, errs := Parse(in, testNow.Truncate(time.Minute))
		assert.Nil(t, data)
		assert.Equal(t, "validation.preferred_datetime.not_future", errs["preferred_datetime"])
	})

	t.Run("unparsable rejected", func(t *testing.T) {
		in := validInput()
		in.PreferredDatetime = "tomorrow at noon"
		data, errs := Parse(in, testNow)
		assert.Nil(t, data)
		assert.Equal(t, "validation.preferred_datetime.invalid", errs["preferred_datetime"])
	})
}

func TestParse_CollectsMultipleFieldErrors(t *testing.T) {
	in := ContactFormInput{
		FullName:        " ",
		Email:           "broken",
		ContactReasonID: "x",
	}
	data, errs := Parse(in, testNow)
	assert.Nil(t, data)
	assert.Len(t, errs, 3)
	assert.True(t, errs.Has("full_name"))
	assert.True(t, errs.Has("email"))
	assert.True(t, errs.Has("contact_reason_id"))
}

func TestContactFormData_MapRoundTrip(t *testing.T) {
	preferred := testNow.Add(24 * time.Hour)
	in := ContactFormInput{
		FullName:          "  Maria Mustermann ",
		Email:             "maria@example.com",
		ContactReasonID:   "3",
		Phone:             "030 123456",
		PreferredDatetime: preferred.Format("2006-01-02T15:04"),
		Message:           "Bitte um Rückruf.",
	}
	data, errs := Parse(in, testNow)
	require.Nil(t, errs)

	m := data.Map()
	assert.Equal(t, "Maria Mustermann", m["full_name"])
	assert.Equal(t, "maria@example.com", m["email"])
	assert.Equal(t, uint(3), m["contact_reason_id"])
	assert.Equal(t, "030 123456", m["phone"])
	assert.Equal(t, *data.PreferredDatetime(), m["preferred_datetime"])
	assert.Equal(t, "Bitte um Rückruf.", m["message"])
}

func TestContactFormData_MapAbsentOptionalsAreNil(t *testing.T) {
	data, errs := Parse(validInput(), testNow)
	require.Nil(t, errs)

	m := data.Map()
	assert.Nil(t, m["phone"])
	assert.Nil(t, m["preferred_datetime"])
	assert.Nil(t, m["message"])
}
