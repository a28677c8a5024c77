// Package govapi is a client for the legislative-data API exposed by
// http://api.duma.gov.ru (thematic blocks, deputies, committees, bill
// search, and more).
//
// Use [NewClient] to obtain raw response bodies in any [ResponseFormat]
// and [NewJSONClient] to obtain decoded JSON values:
//
//	clnt, err := govapi.NewJSONClient(govapi.Config{
//		Token:    token,
//		AppToken: appToken,
//	})
//	if err != nil {
//		return err
//	}
//	stages, err := clnt.Stages(ctx)
//
// Each call performs exactly one GET request. We neither retry nor cache
// and we do not impose any timeout other than the one in the context.
package govapi
