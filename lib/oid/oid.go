package oid

// Oid is a Postgres object identifier. The encoder carries oids opaquely,
// naming parameter types in Parse and the target routine in FunctionCall;
// values come from the server's catalog and are never interpreted here.
type Oid uint32

// Oids of a few built in types, for scripts and tests.
const (
	Bool        Oid = 16
	Bytea       Oid = 17
	Int8        Oid = 20
	Int2        Oid = 21
	Int4        Oid = 23
	Text        Oid = 25
	JSON        Oid = 114
	Float4      Oid = 700
	Float8      Oid = 701
	Varchar     Oid = 1043
	Timestamp   Oid = 1114
	Timestamptz Oid = 1184
	UUID        Oid = 2950
	JSONB       Oid = 3802
)
