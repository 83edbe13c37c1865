package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// maxBodyBytes caps checkout request bodies; they carry a few ids and an email.
const maxBodyBytes = 64 << 10

// SanitizeJSONInput strips markup from every string in a JSON request body
// using bluemonday's strict policy. Non-JSON and empty bodies pass through.
func SanitizeJSONInput() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}
		if c.ContentType() != gin.MIMEJSON || c.Request.Body == nil {
			c.Next()
			return
		}

		buf, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}
		if len(buf) > maxBodyBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
			return
		}
		if len(bytes.TrimSpace(buf)) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewReader(buf))
			c.Next()
			return
		}

		var body any
		dec := json.NewDecoder(bytes.NewReader(buf))
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
			return
		}

		newBody, err := json.Marshal(sanitize(policy, body))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}

func sanitize(policy *bluemonday.Policy, v any) any {
	switch x := v.(type) {
	case string:
		return stripMarkup(policy, x)
	case map[string]any:
		for k, val := range x {
			x[k] = sanitize(policy, val)
		}
		return x
	case []any:
		for i, val := range x {
			x[i] = sanitize(policy, val)
		}
		return x
	default:
		return v
	}
}

// stripMarkup removes tags but keeps plain text as typed, so "o'brien" stays
// "o'brien" instead of "o&#39;brien". Escaped text that would turn back into
// markup keeps its entities.
func stripMarkup(policy *bluemonday.Policy, s string) string {
	clean := policy.Sanitize(s)
	plain := html.UnescapeString(clean)
	if policy.Sanitize(plain) != clean {
		return clean
	}
	return plain
}
