package dto

import (
    "shopcatalog/internal/http-api/models"
)

// ArticleResponse DTO for catalog and details responses
type ArticleResponse struct {
    ID       int64    `json:"id"`
    Name     string   `json:"name"`
    Price    float64  `json:"price"`
    Score    *float64 `json:"score,omitempty"` // absent until the first rating
    Category string   `json:"category"`
    Brand    string   `json:"brand"`
}

// ArticleDetailsResponse is the full details page payload: the article, the
// review state and the prev/next ids for paging within the filtered list.
type ArticleDetailsResponse struct {
    Article       ArticleResponse        `json:"article"`
    ScoreCount    int64                  `json:"score_count"`
    PersonalScore *PersonalScoreResponse `json:"personal_score,omitempty"`
    Reviews       []ReviewResponse       `json:"reviews"`
    PreviousID    int64                  `json:"previous_id"`
    NextID        int64                  `json:"next_id"`
}

// Converters
func FromModelToArticleResponse(m models.Article) ArticleResponse {
    return ArticleResponse{
        ID:       m.ID,
        Name:     m.Name,
        Price:    m.Price,
        Score:    m.Score,
        Category: m.Category.Name,
        Brand:    m.Brand.Name,
    }
}

func FromArticleList(list []models.Article) []ArticleResponse {
    out := make([]ArticleResponse, 0, len(list))
    for _, a := range list {
        out = append(out, FromModelToArticleResponse(a))
    }
    return out
}
