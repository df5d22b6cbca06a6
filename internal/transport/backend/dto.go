package backend

import (
	"encoding/json"
	"strings"
)

type searchRequest struct {
	Query      string `json:"query"`
	NumResults int    `json:"num_results"`
}

type articleResponse struct {
	Result []articleHit `json:"result"`
}

type articleHit struct {
	Score         float64      `json:"score"`
	Category      string       `json:"category"`
	Title         string       `json:"title"`
	URL           string       `json:"url"`
	Image         string       `json:"image"`
	Summary       string       `json:"summary"`
	SummaryPrefix string       `json:"summary_prefix"`
	Concept       string       `json:"concept"`
	Date          string       `json:"date"`
	NumVotes      int          `json:"num_votes"`
	NumResponses  int          `json:"num_responses"`
	Topics        []topicEntry `json:"topics"`
	TagsRank      []tagEntry   `json:"tags_rank"`
	Meta          articleMeta  `json:"meta"`
}

type topicEntry struct {
	Topic string `json:"topic"`
}

type tagEntry struct {
	Word string `json:"word"`
}

type articleMeta struct {
	Code   string `json:"code"`
	Length string `json:"length"`
}

type qaRequest struct {
	Query      string `json:"query"`
	NumResults int    `json:"num_results"`
	NumReader  int    `json:"num_reader"`
}

type qaResponse struct {
	Result []qaHit `json:"result"`
}

type qaHit struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
	Card   struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Summary string `json:"summary"`
	} `json:"card"`
}

type restaurantRequest struct {
	Query        string   `json:"query"`
	NumResults   int      `json:"num_results"`
	LocationList []string `json:"location_list"`
}

type restaurantResponse struct {
	Result []restaurantHit `json:"result"`
}

type restaurantHit struct {
	Score   float64        `json:"score"`
	Meta    map[string]any `json:"meta"`
	Context string         `json:"context"`
	Info    struct {
		Name       string          `json:"name"`
		URL        string          `json:"url"`
		Rating     float64         `json:"rating"`
		Price      json.RawMessage `json:"price"`
		City       string          `json:"city"`
		NumReviews int             `json:"num_reviews"`
		Categories []string        `json:"categories"`
	} `json:"info"`
}

type linkRequest struct {
	Text      string  `json:"text"`
	Threshold float64 `json:"threshold"`
	Coref     bool    `json:"coref"`
}

type linkResponse struct {
	Entities []struct {
		Title string `json:"title"`
		Label string `json:"label"`
		URL   string `json:"url"`
	} `json:"entities"`
}

// rawText renders a JSON scalar as text: strings unquoted, numbers as written, null as "".
func rawText(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return s
}
