package httpx

type ctxKey string

const (
	// CtxKeyUserEmail holds the authenticated professional's email address.
	CtxKeyUserEmail ctxKey = "user_email"
	// CtxKeyClaims holds the full jwtx.Claims when bearer auth succeeded.
	CtxKeyClaims ctxKey = "claims"
)
