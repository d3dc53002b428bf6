package services

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/polyglotlabs/linguachat-backend/internal/config"
	apperrors "github.com/polyglotlabs/linguachat-backend/pkg/errors"
	"github.com/polyglotlabs/linguachat-backend/pkg/logger"
)

// Translation proxy against a Lingva-compatible upstream. This feature is
// independent of the message relay: chat payloads are ciphertext and never
// pass through here; clients translate plaintext they have already decrypted
// locally.

type TranslationResult struct {
	TranslatedText   string `json:"translatedText"`
	DetectedLanguage string `json:"detectedLanguage"`
}

type lingvaResponse struct {
	Translation string `json:"translation"`
	Info        struct {
		DetectedSource string `json:"detectedSource"`
	} `json:"info"`
}

var translateClient = &http.Client{Timeout: 10 * time.Second}

// Identical texts get re-requested constantly when users flip between chats,
// so cache upstream responses for a while.
type translationCacheEntry struct {
	Result    TranslationResult
	Timestamp time.Time
}

var (
	translationCache = make(map[string]translationCacheEntry)
	translationMu    sync.RWMutex
	translationTTL   = 30 * time.Minute
)

func translationCacheKey(target, text string) string {
	hash := sha256.Sum256([]byte(target + ":" + text))
	return hex.EncodeToString(hash[:])
}

// TranslateText sends plain text to the upstream and returns the translation
// plus the source language the upstream detected.
func TranslateText(text, targetLanguage string) (TranslationResult, error) {
	if strings.TrimSpace(text) == "" {
		return TranslationResult{}, apperrors.BadRequest("Text is required")
	}
	if targetLanguage == "" {
		targetLanguage = "en"
	}

	key := translationCacheKey(targetLanguage, text)
	translationMu.RLock()
	if entry, ok := translationCache[key]; ok && time.Since(entry.Timestamp) < translationTTL {
		translationMu.RUnlock()
		return entry.Result, nil
	}
	translationMu.RUnlock()

	endpoint := config.AppConfig.TranslateAPIURL + "/auto/" + targetLanguage + "/" + url.PathEscape(text)

	resp, err := translateClient.Get(endpoint)
	if err != nil {
		logger.Error().Err(err).Msg("Translation upstream unreachable")
		return TranslationResult{}, apperrors.Internal("Translation service unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn().Int("status", resp.StatusCode).Msg("Translation upstream returned non-200")
		return TranslationResult{}, apperrors.Internal("Translation failed")
	}

	var body lingvaResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return TranslationResult{}, apperrors.Internal("Invalid response from translation service")
	}
	if body.Translation == "" {
		return TranslationResult{}, apperrors.Internal("No translation received")
	}

	detected := body.Info.DetectedSource
	if detected == "" {
		detected = "unknown"
	}

	result := TranslationResult{
		TranslatedText:   body.Translation,
		DetectedLanguage: detected,
	}

	translationMu.Lock()
	translationCache[key] = translationCacheEntry{Result: result, Timestamp: time.Now()}
	translationMu.Unlock()

	return result, nil
}

// TranslationLanguage is one entry of the supported target-language list.
type TranslationLanguage struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// AvailableTranslationLanguages returns the target languages the translate
// feature supports.
func AvailableTranslationLanguages() []TranslationLanguage {
	return []TranslationLanguage{
		{Code: "ru", Name: "Russian"},
		{Code: "en", Name: "English"},
		{Code: "zh", Name: "Chinese"},
		{Code: "es", Name: "Spanish"},
		{Code: "fr", Name: "French"},
		{Code: "de", Name: "German"},
		{Code: "ja", Name: "Japanese"},
		{Code: "ar", Name: "Arabic"},
		{Code: "it", Name: "Italian"},
	}
}
