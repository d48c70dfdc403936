// Package paystack is a typed client for the Paystack REST API.
//
// A Client is constructed once with a secret key and exposes one service
// per API resource group. Every call performs exactly one HTTP round trip
// and returns a Response envelope carrying the decoded record(s) alongside
// the untouched raw body:
//
//	client, err := paystack.NewClient(paystack.WithSecretKey(os.Getenv("PAYSTACK_SECRET_KEY")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Transactions.Initialize(ctx, &paystack.InitializeTransactionRequest{
//	    Email:  "customer@email.com",
//	    Amount: 500000,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if resp.Status {
//	    fmt.Println(resp.Data.AuthorizationURL)
//	}
//
// The envelope's Status and StatusCode mirror the remote API's own success
// signaling; transport failures and client-side validation failures are the
// only conditions reported as Go errors.
package paystack
