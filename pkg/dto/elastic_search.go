package dto

type ElasticsearchResponse[T any] struct {
	Took     int         `json:"took"`
	TimedOut bool        `json:"timed_out"`
	Shards   ShardsInfo  `json:"_shards"`
	Hits     HitsInfo[T] `json:"hits"`
}

type ShardsInfo struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

type HitsInfo[T any] struct {
	Total    TotalHitsInfo `json:"total"`
	MaxScore float64       `json:"max_score"`
	Hits     []Hit[T]      `json:"hits"`
}

type TotalHitsInfo struct {
	Value    int    `json:"value"`
	Relation string `json:"relation"`
}

type Hit[T any] struct {
	Index  string  `json:"_index"`
	ID     string  `json:"_id"`
	Score  float64 `json:"_score"`
	Source T       `json:"_source"`
}
