package wallet

import "context"

// Unavailable is the Wallet used when no provider is attached. Every call
// fails with ErrNoProvider.
type Unavailable struct{}

func (Unavailable) Connect(context.Context) (string, error) { return "", ErrNoProvider }
func (Unavailable) Disconnect(context.Context) error         { return ErrNoProvider }

func (Unavailable) Balance(context.Context, string) (float64, error) {
	return 0, ErrNoProvider
}

func (Unavailable) SignMessage(context.Context, []byte) ([]byte, error) {
	return nil, ErrNoProvider
}

func (Unavailable) SubmitTransfer(context.Context, Transfer) (string, error) {
	return "", ErrNoProvider
}
