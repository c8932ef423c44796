/*
Package cash keeps the ledger of the native unit of the chain.

Every address owns a wallet holding a non-negative balance. There is no
logic in the balance itself except that it may not go below zero and may not
overflow. Other extensions move funds through the Controller, clients use
the SendMsg.
*/
package cash
