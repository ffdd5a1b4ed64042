package trace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetupDisabledWithoutEndpoint(t *testing.T) {
	p, err := Setup(context.Background(), "", "portfolio")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.NotNil(t, p.Tracer())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func attr(span sdktrace.ReadOnlySpan, key string) attribute.Value {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value
		}
	}
	return attribute.Value{}
}

func TestMiddlewareRecordsSpans(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := tracetest.NewSpanRecorder()
	p := NewProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	defer p.Shutdown(context.Background())

	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("request_id", "rid-1"); c.Next() })
	router.Use(Middleware(p.Tracer()))
	router.GET("/work/:index", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/work/3", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "GET /work/:index", spans[0].Name())
	assert.Equal(t, int64(200), attr(spans[0], "http.status_code").AsInt64())
	assert.Equal(t, "/work/3", attr(spans[0], "http.target").AsString())
	assert.Equal(t, "rid-1", attr(spans[0], "portfolio.request_id").AsString())

	assert.Equal(t, codes.Error, spans[1].Status().Code)
}

func TestMiddlewareHonoursTraceparent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := tracetest.NewSpanRecorder()
	p := NewProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	defer p.Shutdown(context.Background())

	router := gin.New()
	router.Use(Middleware(p.Tracer()))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	router.ServeHTTP(httptest.NewRecorder(), req)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spans[0].SpanContext().TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", spans[0].Parent().SpanID().String())
}
