package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindRequest(t *testing.T, body string, obj any, allowEmpty bool) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, bindJSON(c, obj, allowEmpty)
}

func TestBindJSON_Valid(t *testing.T) {
	var req createUserRequest
	_, ok := bindRequest(t, `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`, &req, false)

	require.True(t, ok)
	assert.Equal(t, "Ada", req.FirstName)
}

func TestBindJSON_ReportsJSONFieldNames(t *testing.T) {
	var req createUserRequest
	w, ok := bindRequest(t, `{"firstName":"Ada","email":"not-an-email"}`, &req, false)

	require.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body := decodeError(t, w)
	assert.Equal(t, msgUnprocessable, body.Message)

	fields := map[string]string{}
	for _, issue := range body.Issues {
		fields[issue.Field] = issue.Rule
	}
	assert.Equal(t, "required", fields["lastName"])
	assert.Equal(t, "email", fields["email"])
}

func TestBindJSON_TypeMismatch(t *testing.T) {
	var req createSetRequest
	w, ok := bindRequest(t, `{"exerciseId":"one","reps":5}`, &req, false)

	require.False(t, ok)
	body := decodeError(t, w)
	require.Len(t, body.Issues, 1)
	assert.Equal(t, "exerciseId", body.Issues[0].Field)
	assert.Equal(t, "type", body.Issues[0].Rule)
}

func TestBindJSON_Malformed(t *testing.T) {
	var req createTagRequest
	w, ok := bindRequest(t, `{"name":`, &req, false)

	require.False(t, ok)
	body := decodeError(t, w)
	require.Len(t, body.Issues, 1)
	assert.Equal(t, "body", body.Issues[0].Field)
}

func TestBindJSON_EmptyBody(t *testing.T) {
	t.Run("rejected for creates", func(t *testing.T) {
		var req createTagRequest
		w, ok := bindRequest(t, "", &req, false)

		assert.False(t, ok)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("allowed for patches", func(t *testing.T) {
		var req patchTagRequest
		_, ok := bindRequest(t, "", &req, true)

		assert.True(t, ok)
		assert.Nil(t, req.Name)
	})
}

func TestBindJSON_LengthLimits(t *testing.T) {
	var req createTagRequest
	w, ok := bindRequest(t, `{"name":"`+strings.Repeat("x", 256)+`"}`, &req, false)

	require.False(t, ok)
	body := decodeError(t, w)
	require.Len(t, body.Issues, 1)
	assert.Equal(t, "name", body.Issues[0].Field)
	assert.Equal(t, "max", body.Issues[0].Rule)
}

func TestBindJSON_NullableFields(t *testing.T) {
	t.Run("null clears", func(t *testing.T) {
		var req patchSetRequest
		_, ok := bindRequest(t, `{"weight":null}`, &req, true)

		require.True(t, ok)
		assert.True(t, req.Weight.IsSpecified())
		assert.True(t, req.Weight.IsNull())
		assert.Nil(t, req.Reps)
	})

	t.Run("omitted stays unspecified", func(t *testing.T) {
		var req patchSetRequest
		_, ok := bindRequest(t, `{"reps":3}`, &req, true)

		require.True(t, ok)
		assert.False(t, req.Weight.IsSpecified())
	})

	t.Run("value is validated", func(t *testing.T) {
		var req patchSetRequest
		w, ok := bindRequest(t, `{"weight":0}`, &req, true)

		require.False(t, ok)
		body := decodeError(t, w)
		require.Len(t, body.Issues, 1)
		assert.Equal(t, "weight", body.Issues[0].Field)
		assert.Equal(t, "min", body.Issues[0].Rule)
	})

	t.Run("string length applies to the value", func(t *testing.T) {
		var req patchTagRequest
		w, ok := bindRequest(t, `{"description":"`+strings.Repeat("a", 1001)+`"}`, &req, true)

		require.False(t, ok)
		assert.Equal(t, "max", decodeError(t, w).Issues[0].Rule)
	})
}
