package revenue

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
	"github.com/iov-one/revshare/gconf"
)

const (
	pathCreateMsg              = "revenue/create"
	pathDistributeMsg          = "revenue/distribute"
	pathUpdateConfigurationMsg = "revenue/update_configuration"
)

var _ revshare.Msg = (*CreateMsg)(nil)

// CreateMsg creates the contract. The main signer becomes the creator.
type CreateMsg struct{}

func (CreateMsg) Path() string {
	return pathCreateMsg
}

func (*CreateMsg) Validate() error {
	return nil
}

var _ revshare.Msg = (*DistributeMsg)(nil)

// DistributeMsg splits a payment between the beneficiaries. It must be
// signed by the payment sender.
type DistributeMsg struct {
	Payment Payment
}

func (DistributeMsg) Path() string {
	return pathDistributeMsg
}

// Validate checks the addresses of the payment. Receiver and amount rules
// are applied by Split.
func (m *DistributeMsg) Validate() error {
	var err error
	err = errors.AppendField(err, "Sender", m.Payment.Sender.Validate())
	err = errors.AppendField(err, "Receiver", m.Payment.Receiver.Validate())
	return err
}

var _ gconf.PatchMsg = (*UpdateConfigurationMsg)(nil)

// UpdateConfigurationMsg patches the revenue configuration. Zero fields of
// the patch are ignored.
type UpdateConfigurationMsg struct {
	Patch *Configuration
}

func (UpdateConfigurationMsg) Path() string {
	return pathUpdateConfigurationMsg
}

func (m *UpdateConfigurationMsg) ConfigPatch() gconf.OwnedConfig {
	return m.Patch
}

func (m *UpdateConfigurationMsg) Validate() error {
	if m.Patch == nil {
		return errors.Field("Patch", errors.ErrEmpty, "required")
	}
	return m.Patch.Validate()
}
