package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLToTextPrefersContentSelector(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs | About</nav>
		<div class="job-description">Senior BIM Engineer needed in Dubai.</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := HTMLToText(html, jobPostingSelectors())

	require.NoError(t, err)
	assert.Equal(t, "Senior BIM Engineer needed in Dubai.", text)
}

func TestHTMLToTextRemovesNoiseElements(t *testing.T) {
	html := `<html><body>
		<script>var x = 1;</script>
		<div class="ads">Buy now</div>
		<p>Requirements: Revit and Navisworks proficiency.</p>
	</body></html>`

	text, err := HTMLToText(html, jobPostingSelectors())

	require.NoError(t, err)
	assert.Contains(t, text, "Requirements: Revit and Navisworks proficiency.")
	assert.NotContains(t, text, "var x = 1")
	assert.NotContains(t, text, "Buy now")
}

func TestHTMLToTextFallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text</p></body></html>`

	text, err := HTMLToText(html, []string{".does-not-exist"})

	require.NoError(t, err)
	assert.Equal(t, "Plain posting text", text)
}

func TestHTMLToTextCollapsesBlankLines(t *testing.T) {
	html := "<html><body><p>First</p>\n\n\n<p>Second</p></body></html>"

	text, err := HTMLToText(html, nil)

	require.NoError(t, err)
	assert.Equal(t, "First\nSecond", text)
}

func TestFetchJobPostingFromServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`<html><body><div class="job-description">BIM Coordinator, Riyadh</div></body></html>`))
	}))
	defer server.Close()

	text, err := FetchJobPosting(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, "BIM Coordinator, Riyadh", text)
}

func TestFetchJobPostingHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := FetchJobPosting(context.Background(), server.URL, nil)

	require.Error(t, err)
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestFetchJobPostingInvalidURL(t *testing.T) {
	_, err := FetchJobPosting(context.Background(), "not a url", nil)

	require.Error(t, err)
	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestFetchJobPostingEmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body></body></html>`))
	}))
	defer server.Close()

	_, err := FetchJobPosting(context.Background(), server.URL, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no readable text")
}

func TestReadCVText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Ahmed Hassan\nBIM Engineer  \n"), 0o644))

	text, err := ReadCVText(path)

	require.NoError(t, err)
	assert.Equal(t, "Ahmed Hassan\nBIM Engineer", text)
}

func TestReadCVTextEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n"), 0o644))

	_, err := ReadCVText(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "is empty")
}

func TestReadCVTextMissingFile(t *testing.T) {
	_, err := ReadCVText(filepath.Join(t.TempDir(), "missing.txt"))

	assert.Error(t, err)
}
