package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kailas-cloud/cardex/internal/domain"
	"github.com/kailas-cloud/cardex/internal/domain/article"
)

// --- Helpers ---

func testOptions() (Options, *prometheus.CounterVec) {
	total := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_backend_requests_total"},
		[]string{"backend", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: "test_backend_duration_seconds"},
		[]string{"backend"})
	return Options{Timeout: 2 * time.Second, RequestsTotal: total, RequestDuration: duration}, total
}

// jsonServer records the decoded request body and replies with status and body.
func jsonServer(t *testing.T, status int, body string, got *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %q", ct)
		}
		if got != nil {
			if err := json.NewDecoder(r.Body).Decode(got); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// --- Articles ---

const articleBody = `{"result":[
 {"score":0.9,"category":"How To","title":"Generics","url":"https://a/1","image":"i.png",
  "summary":"Body","summary_prefix":"Intro","concept":"Go","date":"2022-01-02",
  "num_votes":12,"num_responses":3,"topics":[{"topic":"go"},{"topic":"types"}],
  "tags_rank":[{"word":"generics"}],"meta":{"code":"yes","length":"5 min"}},
 {"score":0.4,"category":"News","title":"Release","url":"https://a/2"}
]}`

func TestArticleClient_SearchArticles(t *testing.T) {
	var req map[string]any
	srv := jsonServer(t, http.StatusOK, articleBody, &req)
	opts, total := testOptions()
	c := NewArticleClient(map[article.Engine]string{article.Dense: srv.URL}, opts)

	cards, err := c.SearchArticles(context.Background(), article.Dense, "go generics", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req["query"] != "go generics" || req["num_results"] != float64(20) {
		t.Errorf("unexpected request %v", req)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}

	a := cards[0].Payload()
	if cards[0].Score() != 0.9 || cards[0].Query() != "go generics" || cards[0].Category() != "How To" {
		t.Errorf("unexpected card header: %v %q %q", cards[0].Score(), cards[0].Query(), cards[0].Category())
	}
	if a.About != "Go" || a.NumVotes != 12 || a.Meta.Length != "5 min" {
		t.Errorf("unexpected payload %+v", a)
	}
	if len(a.Topics) != 2 || a.Topics[1] != "types" || len(a.Tags) != 1 || a.Tags[0] != "generics" {
		t.Errorf("unexpected topics/tags %v %v", a.Topics, a.Tags)
	}
	if a.EnrichmentText() != "Intro\nBody" {
		t.Errorf("unexpected enrichment text %q", a.EnrichmentText())
	}
	if v := testutil.ToFloat64(total.WithLabelValues(NameArticles, "200")); v != 1 {
		t.Errorf("expected one 200 request, got %v", v)
	}
}

func TestArticleClient_UnknownEngine(t *testing.T) {
	opts, _ := testOptions()
	c := NewArticleClient(map[article.Engine]string{}, opts)
	if _, err := c.SearchArticles(context.Background(), article.Mix, "q", 10); err == nil {
		t.Fatal("expected error for missing endpoint")
	}
}

func TestArticleClient_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		label  string
	}{
		{"server error", http.StatusInternalServerError, `{}`, "500"},
		{"not found", http.StatusNotFound, ``, "404"},
		{"bad json", http.StatusOK, `{"result":`, "decode_error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := jsonServer(t, tc.status, tc.body, nil)
			opts, total := testOptions()
			c := NewArticleClient(map[article.Engine]string{article.Keyword: srv.URL}, opts)

			_, err := c.SearchArticles(context.Background(), article.Keyword, "q", 10)
			if !errors.Is(err, domain.ErrBackendUnavailable) {
				t.Fatalf("expected ErrBackendUnavailable, got %v", err)
			}
			if v := testutil.ToFloat64(total.WithLabelValues(NameArticles, tc.label)); v != 1 {
				t.Errorf("expected status label %q, got %v", tc.label, v)
			}
		})
	}
}

func TestArticleClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	opts, total := testOptions()
	c := NewArticleClient(map[article.Engine]string{article.Mix: url}, opts)
	_, err := c.SearchArticles(context.Background(), article.Mix, "q", 10)
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
	if v := testutil.ToFloat64(total.WithLabelValues(NameArticles, "transport_error")); v != 1 {
		t.Errorf("expected transport_error label, got %v", v)
	}
}

func TestArticleClient_EmptyResult(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{}`, nil)
	opts, _ := testOptions()
	c := NewArticleClient(map[article.Engine]string{article.Mix: srv.URL}, opts)

	cards, err := c.SearchArticles(context.Background(), article.Mix, "q", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("expected no cards, got %d", len(cards))
	}
}

// --- QA ---

func TestQAClient_Answer(t *testing.T) {
	var req map[string]any
	srv := jsonServer(t, http.StatusOK,
		`{"result":[{"answer":"a tree","score":0.8,"card":{"title":"T","url":"u","summary":"s"}},{"answer":"b","score":0.2}]}`,
		&req)
	opts, _ := testOptions()
	c := NewQAClient(srv.URL, opts)

	answers, err := c.Answer(context.Background(), "what is a heap?", 10, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req["num_reader"] != float64(3) || req["query"] != "what is a heap?" {
		t.Errorf("unexpected request %v", req)
	}
	if len(answers) != 2 || answers[0].Text != "a tree" || answers[0].Source.Title != "T" {
		t.Errorf("unexpected answers %+v", answers)
	}
}

func TestQAClient_Failure(t *testing.T) {
	srv := jsonServer(t, http.StatusBadGateway, ``, nil)
	opts, _ := testOptions()
	if _, err := NewQAClient(srv.URL, opts).Answer(context.Background(), "q?", 1, 1); !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Errorf("expected ErrBackendUnavailable, got %v", err)
	}
}

// --- Restaurants ---

func TestRestaurantClient_SearchRestaurants(t *testing.T) {
	var req map[string]any
	srv := jsonServer(t, http.StatusOK, `{"result":[
	 {"score":0.3,"meta":{"name":"Meta Name","id":"r1"},"context":"Great drinks",
	  "info":{"name":"The Pub","url":"https://y/1","rating":4.5,"price":"$$","city":"Toronto","num_reviews":80,"categories":["Bars","Pubs"]}},
	 {"score":0.1,"meta":{"name":"Fallback"},"context":"ok","info":{"price":2,"categories":[]}}
	]}`, &req)
	opts, _ := testOptions()
	c := NewRestaurantClient(srv.URL, opts)

	cards, err := c.SearchRestaurants(context.Background(), "drinks", 10, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if locs, ok := req["location_list"].([]any); !ok || len(locs) != 0 {
		t.Errorf("expected empty location_list, got %v", req["location_list"])
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}

	r := cards[0].Payload()
	if r.Name != "The Pub" || r.Price != "$$" || r.Review != "Great drinks" || r.Category() != "Bars" {
		t.Errorf("unexpected payload %+v", r)
	}
	if r.Meta["id"] != "r1" {
		t.Errorf("meta not passed through: %v", r.Meta)
	}

	r2 := cards[1].Payload()
	if r2.Name != "Fallback" || r2.Price != "2" || r2.Category() != "Uncategorized" {
		t.Errorf("unexpected fallback payload %+v", r2)
	}
}

func TestRawText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{``, ""},
		{`null`, ""},
		{`"$$$"`, "$$$"},
		{`3`, "3"},
		{`1.5`, "1.5"},
	}
	for _, tc := range tests {
		if got := rawText(json.RawMessage(tc.in)); got != tc.want {
			t.Errorf("rawText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// --- Entity linking ---

func TestLinkerClient_Link(t *testing.T) {
	var req map[string]any
	srv := jsonServer(t, http.StatusOK,
		`{"entities":[{"title":"Go","label":"language","url":"https://go.dev","extra":1}]}`, &req)
	opts, _ := testOptions()
	c := NewLinkerClient(srv.URL, DefaultLinkThreshold, true, opts)

	concepts, err := c.Link(context.Background(), "Intro Body")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req["text"] != "Intro Body" || req["threshold"] != 0.8 || req["coref"] != true {
		t.Errorf("unexpected request %v", req)
	}
	if len(concepts) != 1 || concepts[0].Label != "language" || concepts[0].URL != "https://go.dev" {
		t.Errorf("unexpected concepts %+v", concepts)
	}
}

func TestLinkerClient_Failure(t *testing.T) {
	srv := jsonServer(t, http.StatusServiceUnavailable, ``, nil)
	opts, _ := testOptions()
	if _, err := NewLinkerClient(srv.URL, 0.8, true, opts).Link(context.Background(), "x"); !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Errorf("expected ErrBackendUnavailable, got %v", err)
	}
}

func TestLinkerClient_ContextCanceled(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"entities":[]}`, nil)
	opts, _ := testOptions()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewLinkerClient(srv.URL, 0.8, true, opts).Link(ctx, "x"); !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Errorf("expected ErrBackendUnavailable, got %v", err)
	}
}
