// Package http provides the optional HTTP adapter for the widget layout admin.
//
// Routes mount under a configurable base path (default /admin):
//   - GET  {base}/widgets            full layout payload
//   - GET  {base}/widgets/areas      resolved areas only
//   - GET  {base}/widgets/available  decorated widget definitions only
//   - POST {base}/widgets/refresh    rebuild the layout, optionally dropping cached area content
//
// Host applications can register handlers on their own mux/router as needed.
package http
