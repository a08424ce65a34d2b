package ir

// Assignment is a triple (dest, src, guard) meaning: while guard holds,
// src drives dest. An absent guard is the constant-true guard.
type Assignment struct {
	Dest  *Port
	Src   *Port
	Guard *Guard
}
