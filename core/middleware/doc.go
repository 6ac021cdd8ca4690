// Package middleware groups the HTTP middleware of the Fiber application.
//
// # Components
//
//   - auth: API key validation on the X-API-Key header. An empty key disables it.
//   - rayid: assigns every request a ray id, stored in the "ray_id" local and
//     echoed in the X-Ray-ID response header so logger.WithRayID can tag logs.
//
// Both are registered globally in the start command. Swagger routes are
// registered before auth and stay public.
package middleware
