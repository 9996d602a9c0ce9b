// Package apikey guards HTTP and gRPC servers with api-key authorization.
//
// A Policy is built once from two optional secrets, a master key and a
// read-only key, and fixes one of four variants for the life of the
// process: both keys, master only, read-only only, or neither (everything
// passes). The read-only key admits only safe (GET) requests; the master
// key admits anything. Secrets are compared in constant time and a
// rejected candidate value is never logged or echoed.
//
// Rejections are uniform: missing header, malformed value, wrong secret,
// and wrong method for the read-only key are indistinguishable to the
// client.
package apikey
