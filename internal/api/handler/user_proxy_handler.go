package handler

import (
	"Corkboard/internal/pkg/logger"
	"fmt"
	log "log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/gin-gonic/gin"
)

// UserProxyHandler 把未匹配的路由原样转发给用户服务
// 网关对这部分流量不做鉴权也不改写响应体，纯透传
type UserProxyHandler struct {
	proxy *httputil.ReverseProxy
}

func NewUserProxyHandler(baseURL string) (*UserProxyHandler, error) {
	target, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid user service base url %q: %w", baseURL, err)
	}

	proxy := &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.SetXForwarded()
			r.Out.Host = target.Host
			if traceID, ok := r.In.Context().Value(logger.TraceIDKey).(string); ok && traceID != "" {
				r.Out.Header.Set("X-Trace-ID", traceID)
			}
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.ErrorContext(r.Context(), "user service proxy failed", "path", r.URL.Path, "err", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"code":502,"message":"User service temporarily unavailable","data":null}`))
		},
	}

	return &UserProxyHandler{proxy: proxy}, nil
}

func (s *UserProxyHandler) Handle(c *gin.Context) {
	s.proxy.ServeHTTP(c.Writer, c.Request)
}
