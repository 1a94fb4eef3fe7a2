package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"

	"cinema-backend/internal/config"
	"cinema-backend/internal/models"

	"github.com/sirupsen/logrus"
)

// TelegramService announces newly published movies to a fixed chat via the
// Bot API: one sendPhoto call carrying the big poster, a bold caption and a
// single inline button linking to the movie page.
type TelegramService struct {
	config     config.TelegramConfig
	logger     *logrus.Logger
	httpClient *http.Client
}

func NewTelegramService(cfg config.TelegramConfig, logger *logrus.Logger) *TelegramService {
	return &TelegramService{
		config: cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

type inlineKeyboardButton struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type inlineKeyboardMarkup struct {
	InlineKeyboard [][]inlineKeyboardButton `json:"inline_keyboard"`
}

type sendPhotoRequest struct {
	ChatID      string               `json:"chat_id"`
	Photo       string               `json:"photo"`
	Caption     string               `json:"caption"`
	ParseMode   string               `json:"parse_mode"`
	ReplyMarkup inlineKeyboardMarkup `json:"reply_markup"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (s *TelegramService) Notify(ctx context.Context, movie *models.Movie) error {
	payload := s.buildPhotoRequest(movie)

	var lastErr error
	for attempt := 1; attempt <= 2; attempt++ {
		if lastErr = s.sendPhoto(ctx, payload); lastErr == nil {
			s.logger.WithFields(logrus.Fields{
				"title":  movie.Title,
				"chatId": s.config.ChatID,
			}).Info("Movie notification sent")
			return nil
		}

		s.logger.WithError(lastErr).WithFields(logrus.Fields{
			"title":   movie.Title,
			"attempt": attempt,
		}).Warn("Failed to send movie notification")
	}
	return lastErr
}

func (s *TelegramService) buildPhotoRequest(movie *models.Movie) sendPhotoRequest {
	return sendPhotoRequest{
		ChatID:    s.config.ChatID,
		Photo:     movie.BigPoster,
		Caption:   fmt.Sprintf("<b>%s</b>", html.EscapeString(movie.Title)),
		ParseMode: "HTML",
		ReplyMarkup: inlineKeyboardMarkup{
			InlineKeyboard: [][]inlineKeyboardButton{
				{
					{
						Text: "🍿 Watch",
						URL:  fmt.Sprintf("%s/movie/%s", s.config.SiteURL, movie.Slug),
					},
				},
			},
		},
	}
}

func (s *TelegramService) sendPhoto(ctx context.Context, payload sendPhotoRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode sendPhoto payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendPhoto", s.config.BaseURL, s.config.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call telegram: %w", err)
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram returned status %d: %s", resp.StatusCode, string(raw))
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram rejected notification: %s", apiResp.Description)
	}
	return nil
}
