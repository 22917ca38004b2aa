package validate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cErr "lovedj/internal/pkg/error"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `json:"name" binding:"required,max=5"`
	Rounds int    `json:"rounds" binding:"omitempty,min=1"`
}

type sampleQuery struct {
	Size int `form:"size" binding:"omitempty,max=10"`
}

func newContext(method, target, body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBindAndValidate(t *testing.T) {
	var ok sample
	cause, respErr := BindAndValidate(newContext(http.MethodPost, "/", `{"name":"Alex","rounds":2}`), &ok)
	require.NoError(t, cause)
	require.NoError(t, respErr)
	assert.Equal(t, "Alex", ok.Name)

	var bad sample
	cause, respErr = BindAndValidate(newContext(http.MethodPost, "/", `{"name":"Alexander"}`), &bad)
	require.Error(t, cause)
	var appErr *cErr.Error
	require.ErrorAs(t, respErr, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HttpCode())
	assert.Contains(t, appErr.ErrorDesc(), `Field "name"`)
	assert.Contains(t, appErr.ErrorDesc(), "'max'")
}

func TestBindQuery(t *testing.T) {
	var q sampleQuery
	cause, respErr := BindQuery(newContext(http.MethodGet, "/?size=50", ""), &q)
	require.Error(t, cause)
	var appErr *cErr.Error
	require.ErrorAs(t, respErr, &appErr)
	assert.Contains(t, appErr.ErrorDesc(), `Field "size"`)
}

func TestParseUUID(t *testing.T) {
	c := newContext(http.MethodGet, "/", "")
	c.Params = gin.Params{{Key: "dateID", Value: "0190b7a4-5c36-7d6e-8f2a-1b3c4d5e6f70"}}
	id, cause, respErr := ParseUUID(c, "dateID")
	require.NoError(t, cause)
	require.NoError(t, respErr)
	assert.Equal(t, "0190b7a4-5c36-7d6e-8f2a-1b3c4d5e6f70", id)

	c.Params = gin.Params{{Key: "dateID", Value: "not-a-uuid"}}
	_, cause, respErr = ParseUUID(c, "dateID")
	assert.Error(t, cause)
	assert.Error(t, respErr)
}

func TestIsValidProviderName(t *testing.T) {
	assert.True(t, IsValidProviderName("openai"))
	assert.True(t, IsValidProviderName("google"))
	assert.True(t, IsValidProviderName("mock"))
	assert.False(t, IsValidProviderName("grok"))
}
