// Package http provides the small request and response layer used by the
// inspection endpoint.
//
//	req := gohttp.NewRequest(r)
//	res := gohttp.NewResponse(w)
//
//	filters := req.Only("kind", "singleton")
//	id := req.RouteParam("identifier")
//
//	res.Success(rows)                   // 200 {"data": rows}
//	res.NotFound(err.Error())           // 404 {"message": "..."}
//	res.ValidationError(v.Errors())     // 422 {"errors": {"field": ["..."]}}
package http
