package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setNotice(t *testing.T, store *Store, level, message string) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	store.Set(c, level, message)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "flash" {
			return cookie
		}
	}
	t.Fatal("flash cookie was not set")
	return nil
}

func takeWithCookie(store *Store, cookie *http.Cookie) (Notice, bool, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		c.Request.AddCookie(cookie)
	}
	notice, ok := store.Take(c)
	return notice, ok, w
}

func TestSetThenTake(t *testing.T) {
	store := NewStore("secret")
	cookie := setNotice(t, store, "success", "Course 'Intro' added successfully!")

	notice, ok, w := takeWithCookie(store, cookie)
	require.True(t, ok)
	assert.Equal(t, "success", notice.Level)
	assert.Equal(t, "Course 'Intro' added successfully!", notice.Message)

	// Take must clear the cookie so the notice shows once.
	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "flash cookie was not cleared on Take")
}

func TestTakeWithoutNotice(t *testing.T) {
	store := NewStore("secret")

	_, ok, _ := takeWithCookie(store, nil)
	assert.False(t, ok)
}

func TestTamperedCookieDrainsSilently(t *testing.T) {
	store := NewStore("secret")
	cookie := setNotice(t, store, "error", "nope")
	cookie.Value += "x"

	_, ok, _ := takeWithCookie(store, cookie)
	assert.False(t, ok)
}

func TestWrongSecretRejected(t *testing.T) {
	cookie := setNotice(t, NewStore("secret-a"), "error", "nope")

	_, ok, _ := takeWithCookie(NewStore("secret-b"), cookie)
	assert.False(t, ok)
}
