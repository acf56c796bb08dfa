// Package http exposes the content query surface as a read-only JSON API.
//
// Routes mount under /api by default:
//   - Blog: /blog, /blog/featured, /blog/categories, /blog/tags, /blog/search,
//     /blog/category/{category}, /blog/{slug}, /blog/{slug}/related
//   - Portfolio: /portfolio, /portfolio/featured, /portfolio/categories,
//     /portfolio/technologies, /portfolio/category/{category}, /portfolio/{slug}
//   - Services: /services, /services/{slug}
//
// Detail responses carry the rendered body under "html". Errors use the
// go-errors envelope. Host applications can register the API on their own
// gin router or use NewRouter.
package http
