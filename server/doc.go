// Package server exposes a capdex database over HTTP.
//
// Routes:
//
//	GET    /entries?q=&sort=      filtered, sorted gallery
//	POST   /entries               create from a draft
//	GET    /entries/{id}          one entry
//	PUT    /entries/{id}          replace the editable attributes
//	DELETE /entries/{id}          remove; unknown ids succeed
//	GET    /entries/{id}/thumbnail JPEG thumbnail
//	GET    /stats                 frequency tables and coverage
//	GET    /stats/markers         world map markers
//	POST   /refresh               reload from storage
//	GET    /healthz               catalog load state
//
// Bodies are JSON. Errors are reported as {"error": "..."}.
package server
