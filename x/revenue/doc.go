/*
Package revenue implements a contract that splits every incoming payment
between two fixed beneficiaries.

The contract is created once. The creator is the main signer of the create
transaction and the platform is the owner declared in the package
configuration. Every distribution moves the paid amount to the contract
account and pays 70% of it to the creator and 30% to the platform. Both
shares are truncated independently, so up to two units of each payment stay
on the contract account.
*/
package revenue
