package shop

type TestOnly struct{}
