package entities

// Entity is a minimal marker interface used as a generic constraint
// for values that travel through the message queue mapper.
type Entity interface{}
