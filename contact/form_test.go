package contact

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/KharpukhaevV/folio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBadEmail(t *testing.T) {
	verr := Validate(models.Submission{Name: "Ann", Email: "bad-email", Message: "hi"})
	require.NotNil(t, verr)
	assert.True(t, verr.Invalid(FieldEmail))
	assert.False(t, verr.Invalid(FieldName))
	assert.False(t, verr.Invalid(FieldMessage))
	assert.Equal(t, "invalid fields: email", verr.Error())
}

func TestValidateRequiresDomainWithDot(t *testing.T) {
	for _, email := range []string{"a@b", "ann@localhost"} {
		verr := Validate(models.Submission{Name: "Ann", Email: email, Message: "hi"})
		require.NotNil(t, verr, email)
		assert.True(t, verr.Invalid(FieldEmail), email)
	}
}

func TestValidateMissingFields(t *testing.T) {
	verr := Validate(models.Submission{Email: "ann@example.com", Message: "   "})
	require.NotNil(t, verr)
	assert.True(t, verr.Invalid(FieldName))
	assert.True(t, verr.Invalid(FieldMessage))
	assert.False(t, verr.Invalid(FieldEmail))

	verr = Validate(models.Submission{})
	require.NotNil(t, verr)
	for _, f := range Fields {
		assert.True(t, verr.Invalid(f), "field %s", f)
	}
}

func TestValidateOK(t *testing.T) {
	assert.Nil(t, Validate(models.Submission{Name: "Ann", Email: "ann@example.com", Message: "Hello"}))

	var verr *ValidationError
	assert.False(t, verr.Invalid(FieldName))
}

func TestBuildMailto(t *testing.T) {
	uri := BuildMailto("you@example.com", models.Submission{
		Name: "Ann", Email: "ann@example.com", Message: "Hello",
	})
	require.True(t, strings.HasPrefix(uri, "mailto:you@example.com?"))

	u, err := url.Parse(uri)
	require.NoError(t, err)
	assert.Equal(t, "mailto", u.Scheme)
	assert.Equal(t, "you@example.com", u.Opaque)

	q, err := url.ParseQuery(u.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "Portfolio contact from Ann", q.Get("subject"))
	assert.Equal(t, "Hello\n\n— Ann\nann@example.com", q.Get("body"))
}

func TestBuildMailtoKeepsMessageAsTyped(t *testing.T) {
	sub := models.Submission{Name: "Ann", Email: "ann@example.com", Message: "    code block\n"}
	require.Nil(t, Validate(sub))

	u, err := url.Parse(BuildMailto("you@example.com", sub))
	require.NoError(t, err)
	q, err := url.ParseQuery(u.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "    code block\n\n\n— Ann\nann@example.com", q.Get("body"))
}

func TestBuildMailtoEncodesSpecialCharacters(t *testing.T) {
	uri := BuildMailto("you@example.com", models.Submission{
		Name: "A&B", Email: "ab@example.com", Message: "x=1&y=2 #tag +plus",
	})
	assert.NotContains(t, uri, " ")
	assert.NotContains(t, uri, "#")
	assert.Equal(t, 1, strings.Count(uri, "&"), "only the parameter separator stays raw")

	u, err := url.Parse(uri)
	require.NoError(t, err)
	q, err := url.ParseQuery(u.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "Portfolio contact from A&B", q.Get("subject"))
	assert.Equal(t, "x=1&y=2 #tag +plus\n\n— A&B\nab@example.com", q.Get("body"))
}

func TestEncodeComponent(t *testing.T) {
	assert.Equal(t, "a%20b", EncodeComponent("a b"))
	assert.Equal(t, "%2B", EncodeComponent("+"))
	assert.Equal(t, "it's(ok)!*", EncodeComponent("it's(ok)!*"))
	assert.Equal(t, "%E2%80%94", EncodeComponent("—"))
	assert.Equal(t, "%0A", EncodeComponent("\n"))
	assert.Equal(t, "%2521", EncodeComponent("%21"))
}

func TestOpenerFunc(t *testing.T) {
	var got string
	var o Opener = OpenerFunc(func(uri string) error {
		got = uri
		return errors.New("boom")
	})
	assert.EqualError(t, o.Open("mailto:x"), "boom")
	assert.Equal(t, "mailto:x", got)
}
