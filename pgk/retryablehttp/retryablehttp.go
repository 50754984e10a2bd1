package retryablehttp

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

const DefaultTimeout = 30 * time.Second

type RetryConfig struct {
	MaxRetries int           // Повторы после первой попытки (0 - без повторов)
	BaseDelay  time.Duration // Базовая задержка (по умолчанию 100ms)
	MaxDelay   time.Duration // Максимальная задержка (по умолчанию 5s)
	MaxJitter  time.Duration // Максимальный jitter (по умолчанию 100ms)
	Timeout    time.Duration // Таймаут одной попытки (по умолчанию 30s)
}

type RetryableClient struct {
	client      *http.Client // с таймаутом попытки, только для Do
	plain       *http.Client // без таймаута, срок задаёт контекст вызывающего
	retryConfig RetryConfig
}

func NewRetryableClient(config RetryConfig) *RetryableClient {
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.BaseDelay == 0 {
		config.BaseDelay = 100 * time.Millisecond
	}
	if config.MaxDelay == 0 {
		config.MaxDelay = 5 * time.Second
	}
	if config.MaxJitter == 0 {
		config.MaxJitter = 100 * time.Millisecond
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &RetryableClient{
		client:      &http.Client{Timeout: config.Timeout},
		plain:       &http.Client{},
		retryConfig: config,
	}
}

// HTTPClient - клиент без повторов и без таймаута, для запросов которые нельзя повторять (создание, обновление)
func (c *RetryableClient) HTTPClient() *http.Client {
	return c.plain
}

// DoOnce - одна попытка с таймаутом попытки, без повторов (периодические пинги)
func (c *RetryableClient) DoOnce(ctx context.Context, req *http.Request) (*http.Response, error) {
	return c.client.Do(req.WithContext(ctx))
}

// isRetryable определяет, нужно ли делать retry
func (c *RetryableClient) isRetryable(resp *http.Response, err error) bool {
	if err != nil {
		// Сетевые ошибки всегда retry
		return true
	}

	if resp == nil {
		return false
	}

	// Retry для серверных ошибок и rate limiting
	statusCode := resp.StatusCode
	return statusCode == 0 || // Неизвестная ошибка
		(statusCode >= 500 && statusCode <= 599) || // 5xx
		statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusRequestTimeout
}

// Do выполняет запрос без тела (GET) с повторами; для запросов с телом используйте HTTPClient
func (c *RetryableClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	req = req.WithContext(ctx)

	for attempt := 0; attempt <= c.retryConfig.MaxRetries; attempt++ {
		// Проверка отмены контекста
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		resp, err = c.client.Do(req)
		if err != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		// Успех
		if err == nil && !c.isRetryable(resp, nil) {
			return resp, nil
		}

		// Последняя попытка - возвращаем ответ или ошибку как есть
		if attempt == c.retryConfig.MaxRetries {
			if err != nil {
				return nil, fmt.Errorf("last attempt failed: %w", err)
			}
			return resp, nil
		}

		// Закрываем тело ответа при retry
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}

		// Exponential backoff + jitter
		delay := c.backoffDelay(attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	return nil, fmt.Errorf("unexpected error")
}

// backoffDelay вычисляет задержку с экспоненциальным ростом и jitter
func (c *RetryableClient) backoffDelay(attempt int) time.Duration {
	backoff := time.Duration(1<<uint(attempt)) * c.retryConfig.BaseDelay
	if backoff > c.retryConfig.MaxDelay {
		backoff = c.retryConfig.MaxDelay
	}

	jitter := time.Duration(rand.Int63n(int64(c.retryConfig.MaxJitter)))
	return backoff + jitter
}
