// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Severity ranks how dangerous a reported scam is.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// NewsArticle is one entry of the fraud news feed.
type NewsArticle struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Source      string   `json:"source"`
	Category    string   `json:"category"`
	Severity    Severity `json:"severity"`
	Date        string   `json:"date"`
	ReadTime    string   `json:"readTime"`
	Icon        string   `json:"image"`
}

// NewsCategory is a filter option of the news feed.
type NewsCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewsFilter selects articles. An empty Category or "all" matches every
// category; Query is matched case-insensitively against title and description.
type NewsFilter struct {
	Category string
	Query    string
}

// GameInfo describes a playable game in the catalogue.
type GameInfo struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	XP         int    `json:"xp"`
	Icon       string `json:"icon"`
}

// NewsResponse is the JSON body of GET /news.
type NewsResponse struct {
	Success    bool           `json:"success"`
	Categories []NewsCategory `json:"categories"`
	Articles   []NewsArticle  `json:"articles"`
}

// GamesResponse is the JSON body of GET /games.
type GamesResponse struct {
	Success bool       `json:"success"`
	Games   []GameInfo `json:"games"`
}
