package rss

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>تست</title>
<item>
  <title>قیمت طلا امروز افزایش یافت</title>
  <description>&lt;p&gt;قیمت هر گرم &lt;b&gt;طلا&lt;/b&gt; امروز&amp;nbsp;افزایش یافت.&lt;/p&gt;</description>
  <link>https://example.com/gold-up</link>
  <pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
</item>
<item>
  <title>اخبار ورزشی</title>
  <description>نتایج مسابقات فوتبال</description>
  <link>https://example.com/sports</link>
  <pubDate>Mon, 02 Jan 2006 16:04:05 GMT</pubDate>
</item>
<item>
  <title>نرخ سکه در بازار</title>
  <description>سکه بهار آزادی گران شد</description>
  <link>https://example.com/coin</link>
  <pubDate>not a date</pubDate>
</item>
</channel>
</rss>`

func TestRelevant(t *testing.T) {
	assert.True(t, Relevant("قیمت طلا امروز", ""))
	assert.True(t, Relevant("", "تحلیل بازار سکه"))
	assert.True(t, Relevant("نرخ طلا", "جزئیات"))
	assert.False(t, Relevant("اخبار ورزشی", "نتایج مسابقات"))
	assert.False(t, Relevant("", ""))
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips tags", "<p>قیمت <b>طلا</b></p>", "قیمت طلا"},
		{"non-breaking space", "قیمت طلا", "قیمت طلا"},
		{"entities", "Tom &amp; Jerry", "Tom & Jerry"},
		{"trims", "  متن  ", "متن"},
		{"plain text untouched", "قیمت سکه", "قیمت سکه"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanDescription(tt.in))
		})
	}
}

func TestSource_FetchFiltersAndCleans(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(feedXML))
	}))
	defer ts.Close()

	src := New(
		Feed{URL: ts.URL, Name: "تست", Category: "economy"},
		Config{Timeout: 5 * time.Second, MaxItems: 20},
		testLogger(),
	)

	items, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2, "sports entry must be filtered out")

	first := items[0]
	assert.Equal(t, "قیمت طلا امروز افزایش یافت", first.Title)
	assert.Equal(t, "قیمت هر گرم طلا امروز افزایش یافت.", first.Description)
	assert.Equal(t, "https://example.com/gold-up", first.Link)
	assert.Equal(t, "تست", first.Source)

	published, err := time.Parse(time.RFC3339, first.PublishedAt)
	require.NoError(t, err)
	assert.Equal(t, 2006, published.Year())

	// Unparseable pubDate falls back to roughly now.
	second, err := time.Parse(time.RFC3339, items[1].PublishedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), second, time.Minute)
}

func TestSource_FetchCapsPerSource(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>t</title>
<item><title>قیمت طلا ۱</title><link>https://example.com/1</link></item>
<item><title>قیمت طلا ۲</title><link>https://example.com/2</link></item>
<item><title>قیمت طلا ۳</title><link>https://example.com/3</link></item>
</channel></rss>`))
	}))
	defer ts.Close()

	src := New(
		Feed{URL: ts.URL, Name: "t"},
		Config{Timeout: 5 * time.Second, MaxItems: 2},
		testLogger(),
	)

	items, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestSource_FetchUnreachable(t *testing.T) {
	src := New(
		Feed{URL: "http://127.0.0.1:1/rss", Name: "dead"},
		Config{Timeout: time.Second, MaxItems: 20},
		testLogger(),
	)

	_, err := src.Fetch(context.Background())
	assert.Error(t, err)
}

func TestFeeds_FixedSourceList(t *testing.T) {
	assert.Len(t, Feeds, 10)
	for _, f := range Feeds {
		assert.NotEmpty(t, f.URL)
		assert.NotEmpty(t, f.Name)
		assert.NotEmpty(t, f.Category)
	}
}
