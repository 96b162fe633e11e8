package metrics

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

// Prometheus-style counters (uint64 via atomic)
var (
	feedServed          atomic.Uint64
	feedFallback        atomic.Uint64
	feedBackfill        atomic.Uint64
	aiRequests          atomic.Uint64
	aiParseFailures     atomic.Uint64
	wsConnections       atomic.Int64 // gauge semantics
	chatIngested        atomic.Uint64
	chatBroadcast       atomic.Uint64
	dlqWrites           atomic.Uint64
	activityPublished   atomic.Uint64
	activityPublishFail atomic.Uint64
)

// Increment helpers
func IncFeedServed()   { feedServed.Add(1) }
func IncFeedFallback() { feedFallback.Add(1) }

// AddFeedBackfill counts placeholder entries appended to real results.
func AddFeedBackfill(n uint64) { feedBackfill.Add(n) }

func IncAIRequest()      { aiRequests.Add(1) }
func IncAIParseFailure() { aiParseFailures.Add(1) }

func IncWSConnections() { wsConnections.Add(1) }
func DecWSConnections() { wsConnections.Add(-1) }

func IncChatIngested()  { chatIngested.Add(1) }
func IncChatBroadcast() { chatBroadcast.Add(1) }
func IncDLQWrite()      { dlqWrites.Add(1) }

func IncActivityPublished()   { activityPublished.Add(1) }
func IncActivityPublishFail() { activityPublishFail.Add(1) }

// Handler exposes metrics in a minimal Prometheus exposition format.
func Handler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprintf(w, "# HELP fitapi_feed_served_total Public testimonial feed responses served\n")
	fmt.Fprintf(w, "# TYPE fitapi_feed_served_total counter\n")
	fmt.Fprintf(w, "fitapi_feed_served_total %d\n", feedServed.Load())

	fmt.Fprintf(w, "# HELP fitapi_feed_fallback_total Feed responses served entirely from defaults after a store failure\n")
	fmt.Fprintf(w, "# TYPE fitapi_feed_fallback_total counter\n")
	fmt.Fprintf(w, "fitapi_feed_fallback_total %d\n", feedFallback.Load())

	fmt.Fprintf(w, "# HELP fitapi_feed_backfill_total Placeholder entries appended to sparse feed results\n")
	fmt.Fprintf(w, "# TYPE fitapi_feed_backfill_total counter\n")
	fmt.Fprintf(w, "fitapi_feed_backfill_total %d\n", feedBackfill.Load())

	fmt.Fprintf(w, "# HELP fitapi_ai_requests_total Advisory requests forwarded to the generative AI endpoint\n")
	fmt.Fprintf(w, "# TYPE fitapi_ai_requests_total counter\n")
	fmt.Fprintf(w, "fitapi_ai_requests_total %d\n", aiRequests.Load())

	fmt.Fprintf(w, "# HELP fitapi_ai_parse_failures_total Advisory replies that failed JSON extraction and used defaults\n")
	fmt.Fprintf(w, "# TYPE fitapi_ai_parse_failures_total counter\n")
	fmt.Fprintf(w, "fitapi_ai_parse_failures_total %d\n", aiParseFailures.Load())

	fmt.Fprintf(w, "# HELP fitapi_ws_connections Current websocket chat connections\n")
	fmt.Fprintf(w, "# TYPE fitapi_ws_connections gauge\n")
	fmt.Fprintf(w, "fitapi_ws_connections %d\n", wsConnections.Load())

	fmt.Fprintf(w, "# HELP fitapi_chat_ingested_total Chat messages accepted from clients\n")
	fmt.Fprintf(w, "# TYPE fitapi_chat_ingested_total counter\n")
	fmt.Fprintf(w, "fitapi_chat_ingested_total %d\n", chatIngested.Load())

	fmt.Fprintf(w, "# HELP fitapi_chat_broadcast_total Chat messages fanned out to connected clients\n")
	fmt.Fprintf(w, "# TYPE fitapi_chat_broadcast_total counter\n")
	fmt.Fprintf(w, "fitapi_chat_broadcast_total %d\n", chatBroadcast.Load())

	fmt.Fprintf(w, "# HELP fitapi_chat_dlq_total Chat messages routed to the dead letter topic\n")
	fmt.Fprintf(w, "# TYPE fitapi_chat_dlq_total counter\n")
	fmt.Fprintf(w, "fitapi_chat_dlq_total %d\n", dlqWrites.Load())

	fmt.Fprintf(w, "# HELP fitapi_activity_published_total Activity events published\n")
	fmt.Fprintf(w, "# TYPE fitapi_activity_published_total counter\n")
	fmt.Fprintf(w, "fitapi_activity_published_total{result=\"ok\"} %d\n", activityPublished.Load())
	fmt.Fprintf(w, "fitapi_activity_published_total{result=\"error\"} %d\n", activityPublishFail.Load())
}
