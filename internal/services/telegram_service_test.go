package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinema-backend/internal/config"
	"cinema-backend/internal/models"
)

func telegramTestConfig(baseURL string) config.TelegramConfig {
	return config.TelegramConfig{
		BotToken:    "test-token",
		ChatID:      "398795650",
		BaseURL:     baseURL,
		SiteURL:     "https://cinema.example.com",
		HTTPTimeout: 5 * time.Second,
	}
}

func TestNotifySendsPhotoPayload(t *testing.T) {
	var captured sendPhotoRequest
	var path string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		json.NewEncoder(w).Encode(apiResponse{OK: true})
	}))
	defer srv.Close()

	service := NewTelegramService(telegramTestConfig(srv.URL), testLogger())

	movie := &models.Movie{
		Title:     "Fight <Club>",
		Slug:      "fight-club",
		BigPoster: "https://cdn.example.com/fight-club-big.jpg",
	}
	if err := service.Notify(context.Background(), movie); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	if path != "/bottest-token/sendPhoto" {
		t.Errorf("path = %q", path)
	}
	if captured.ChatID != "398795650" {
		t.Errorf("chat_id = %q", captured.ChatID)
	}
	if captured.Photo != movie.BigPoster {
		t.Errorf("photo = %q, want the big poster", captured.Photo)
	}
	if captured.Caption != "<b>Fight &lt;Club&gt;</b>" {
		t.Errorf("caption = %q, want html-escaped bold title", captured.Caption)
	}
	if captured.ParseMode != "HTML" {
		t.Errorf("parse_mode = %q", captured.ParseMode)
	}

	buttons := captured.ReplyMarkup.InlineKeyboard
	if len(buttons) != 1 || len(buttons[0]) != 1 {
		t.Fatalf("keyboard = %+v, want a single button", buttons)
	}
	if got := buttons[0][0].URL; got != "https://cinema.example.com/movie/fight-club" {
		t.Errorf("button url = %q", got)
	}
}

func TestNotifyRetriesOnce(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(apiResponse{OK: false, Description: "chat not found"})
	}))
	defer srv.Close()

	service := NewTelegramService(telegramTestConfig(srv.URL), testLogger())

	err := service.Notify(context.Background(), &models.Movie{Title: "Heat", Slug: "heat"})
	if err == nil {
		t.Fatal("Notify succeeded against a rejecting API")
	}
	if calls != 2 {
		t.Errorf("made %d calls, want 2", calls)
	}
}

func TestNotifyRecoversOnRetry(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			json.NewEncoder(w).Encode(apiResponse{OK: false, Description: "flood control"})
			return
		}
		json.NewEncoder(w).Encode(apiResponse{OK: true})
	}))
	defer srv.Close()

	service := NewTelegramService(telegramTestConfig(srv.URL), testLogger())

	if err := service.Notify(context.Background(), &models.Movie{Title: "Heat", Slug: "heat"}); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if calls != 2 {
		t.Errorf("made %d calls, want 2", calls)
	}
}
