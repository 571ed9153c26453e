package router

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/envelope-zero/expenses/internal/budget"
	"github.com/envelope-zero/expenses/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// HeaderUser is set by an authenticating reverse proxy.
const HeaderUser = "X-Forwarded-User"

func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.ContextURL), url.String())
		c.Next()
	}
}

// Account of a user for basic authentication.
type Account struct {
	Password   string
	Collection string // Collection of expenses, the user name if empty
}

// ParseAccounts parses a comma separated list of "user:password[:collection]"
// entries. Invalid entries are skipped.
func ParseAccounts(s string) map[string]Account {
	accounts := make(map[string]Account)

	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, ":", 3)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			log.Warn().Int("length", len(entry)).Msg("skipping invalid entry in BASIC_AUTH_USERS")
			continue
		}

		account := Account{Password: parts[1]}
		if len(parts) == 3 {
			account.Collection = parts[2]
		}

		accounts[parts[0]] = account
	}

	return accounts
}

// IdentityMiddleware sets the user and the collection of expenses for the
// request.
//
// With accounts, the user must authenticate with basic authentication.
// Without, the user is read from the X-Forwarded-User header. Requests
// without a user are rejected.
func IdentityMiddleware(accounts map[string]Account) gin.HandlerFunc {
	if len(accounts) == 0 {
		return func(c *gin.Context) {
			user := strings.TrimSpace(c.GetHeader(HeaderUser))
			if user == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": fmt.Sprintf("the %s header must be set", HeaderUser)})
				return
			}

			setIdentity(c, user, "")
			c.Next()
		}
	}

	pairs := make(gin.Accounts, len(accounts))
	for user, account := range accounts {
		pairs[user] = account.Password
	}
	basicAuth := gin.BasicAuthForRealm(pairs, "expenses")

	return func(c *gin.Context) {
		basicAuth(c)
		if c.IsAborted() {
			return
		}

		user := c.GetString(gin.AuthUserKey)
		setIdentity(c, user, accounts[user].Collection)
		c.Next()
	}
}

func setIdentity(c *gin.Context, user, collection string) {
	if collection == "" {
		collection = user
	}

	c.Set(string(models.ContextUser), user)
	c.Set(string(models.ContextCollection), collection)
}

var metrics = []prometheus.Collector{
	requestCount,
	requestDuration,
	budget.CatalogLoads,
}

// registerPrometheusMetrics registers all Prometheus metrics
// with the default registry.
func registerPrometheusMetrics() error {
	for _, c := range metrics {
		if err := prometheus.Register(c); err != nil {
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

// unregisterPrometheusMetrics unregisters all Prometheus metrics.
//
// This is needed to cleanly exit.
func unregisterPrometheusMetrics() bool {
	ok := true
	for _, c := range metrics {
		if !prometheus.Unregister(c) {
			ok = false
		}
	}

	return ok
}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

// MetricsMiddleware updates Prometheus metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Replace all URL parameters with their name to reduce cardinality
		// https://prometheus.io/docs/practices/naming/#labels
		url := c.Request.URL.Path
		for _, p := range c.Params {
			url = strings.Replace(url, p.Value, fmt.Sprintf(":%s", p.Key), 1)
		}

		requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}
