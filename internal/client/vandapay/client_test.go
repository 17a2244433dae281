package vandapay_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/mrhaji1999/vandapay-sub001/infra/client/rest"
	"github.com/mrhaji1999/vandapay-sub001/internal/client/vandapay"
	"github.com/mrhaji1999/vandapay-sub001/internal/errors"
	"github.com/mrhaji1999/vandapay-sub001/internal/model"
)

func silent() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newClient(test *testing.T, handler http.Handler) *vandapay.Client {
	srv := httptest.NewServer(handler)
	test.Cleanup(srv.Close)
	return vandapay.NewClient(silent(), rest.NewClient(silent(),
		rest.WithBaseURL(srv.URL),
	))
}

func TestToken(test *testing.T) {

	api := newClient(test, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token" || r.Method != http.MethodPost {
			test.Errorf("%s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"token":"granted-token","user_id":"42","user_display_name":"John Doe","user_role":"company"}`))
	}))

	grant, err := api.Token(context.Background(), "j.doe", "secret")
	if err != nil {
		test.Fatalf("Token() error = %v", err)
	}
	if grant.Token != "granted-token" {
		test.Errorf("grant.Token = %q", grant.Token)
	}

	seed := grant.Seed()
	if seed == nil || seed.Id != 42 || seed.Name != "John Doe" || seed.Role != model.RoleCompany {
		test.Errorf("Seed() = %+v", seed)
	}
}

func TestTokenEmptyGrant(test *testing.T) {

	api := newClient(test, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success"}`))
	}))

	if _, err := api.Token(context.Background(), "j.doe", "secret"); err != vandapay.ErrNoTokenGranted {
		test.Errorf("Token() error = %v, want %v", err, vandapay.ErrNoTokenGranted)
	}
}

func TestGrantSeedWithoutPrincipal(test *testing.T) {
	grant := &vandapay.Grant{Token: "granted-token"}
	if seed := grant.Seed(); seed != nil {
		test.Errorf("Seed() = %+v, want nil", seed)
	}
}

func TestFetchProfileFallback(test *testing.T) {

	var profileHits, meHits int32
	api := newClient(test, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/profile":
			atomic.AddInt32(&profileHits, 1)
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"code":"rest_no_route","message":"No route was found.","data":{"status":404}}`))
		case "/me":
			atomic.AddInt32(&meHits, 1)
			w.Write([]byte(`{"status":"success","data":{"id":"42","username":"j.doe","role":"merchant"}}`))
		default:
			test.Errorf("unexpected path %q", r.URL.Path)
		}
	}))

	user, err := api.FetchProfile(context.Background(), "token-a")
	if err != nil {
		test.Fatalf("FetchProfile() error = %v", err)
	}
	if user.Id != 42 || user.Role != model.RoleMerchant {
		test.Errorf("user = %+v", user)
	}
	if profileHits != 1 || meHits != 1 {
		test.Errorf("hits: /profile=%d /me=%d", profileHits, meHits)
	}
}

func TestFetchProfileCache(test *testing.T) {

	var hits int32
	api := newClient(test, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"status":"success","data":{"id":42,"username":"j.doe"}}`))
	}))

	for i := 0; i < 3; i++ {
		if _, err := api.FetchProfile(context.Background(), "token-a"); err != nil {
			test.Fatalf("FetchProfile() error = %v", err)
		}
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		test.Errorf("server hit %d times, want 1", n)
	}

	// another token is another principal ; MUST miss
	if _, err := api.FetchProfile(context.Background(), "token-b"); err != nil {
		test.Fatalf("FetchProfile() error = %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 2 {
		test.Errorf("server hit %d times, want 2", n)
	}
}

func TestFetchProfileMalformed(test *testing.T) {

	api := newClient(test, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 with no usable principal
		w.Write([]byte(`{"status":"success","data":{"username":"ghost"}}`))
	}))

	if _, err := api.FetchProfile(context.Background(), "token-a"); err == nil {
		test.Error("FetchProfile() error = nil, want malformed payload failure")
	}
}

func TestWalletBalance(test *testing.T) {

	api := newClient(test, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":{"user_id":"42","balance":"1500.50"}}`))
	}))

	balance, err := api.WalletBalance(context.Background())
	if err != nil {
		test.Fatalf("WalletBalance() error = %v", err)
	}
	if balance == nil || balance.UserId != 42 || float64(balance.Balance) != 1500.50 {
		test.Errorf("balance = %+v", balance)
	}
}

func TestWalletBalanceShapeMismatch(test *testing.T) {

	api := newClient(test, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":[1,2,3]}`))
	}))

	balance, err := api.WalletBalance(context.Background())
	if err != nil {
		test.Fatalf("WalletBalance() error = %v", err)
	}
	if balance != nil {
		test.Errorf("balance = %+v, want nil on shape mismatch", balance)
	}
}

func TestTransactionHistory(test *testing.T) {

	api := newClient(test, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":[
			{"id":"2","sender_id":"7","receiver_id":"42","amount":"250","type":"charge","status":"completed","created_at":"2026-08-28 10:15:00"},
			{"id":"1","sender_id":"42","receiver_id":"9","amount":"99.9","status":"pending"}
		]}`))
	}))

	list, err := api.TransactionHistory(context.Background())
	if err != nil {
		test.Fatalf("TransactionHistory() error = %v", err)
	}
	if list.Total != 2 || len(list.Data) != 2 {
		test.Fatalf("list = %+v", list)
	}
	first := list.Data[0]
	if first.Id != 2 || float64(first.Amount) != 250 || first.Status != "completed" {
		test.Errorf("first = %+v", first)
	}
}

func TestTransactionHistoryEmpty(test *testing.T) {

	api := newClient(test, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":{"unexpected":"object"}}`))
	}))

	list, err := api.TransactionHistory(context.Background())
	if err != nil {
		test.Fatalf("TransactionHistory() error = %v", err)
	}
	// shape mismatch degrades to an empty dataset
	if list.Total != 0 || len(list.Data) != 0 {
		test.Errorf("list = %+v", list)
	}
}

func TestEmployees(test *testing.T) {

	api := newClient(test, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/companies/7/employees" {
			test.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("search") != "doe" {
			test.Errorf("query = %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"status":"success","data":[
			{"id":"1","name":"John Doe","email":"j@doe.io","national_id":"0012345678","balance":"150.50","status":"active"},
			{"id":"2","name":"Jane Doe","national_id":"0087654321","balance":"0"}
		]}`))
	}))

	query := url.Values{"search": []string{"doe"}}
	list, err := api.Employees(context.Background(), 7, query)
	if err != nil {
		test.Fatalf("Employees() error = %v", err)
	}
	if list.Total != 2 || len(list.Data) != 2 {
		test.Fatalf("list = %+v", list)
	}
	first := list.Data[0]
	if first.Id != 1 || first.NationalId != "0012345678" || float64(first.Balance) != 150.50 {
		test.Errorf("first = %+v", first)
	}
}

func TestSearchEmployee(test *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantId  int64
		wantErr error
	}{
		{
			name:    "single match",
			payload: `{"status":"success","data":[{"id":"42","name":"John Doe","national_id":"0012345678"}]}`,
			wantId:  42,
		},
		{
			name:    "no match",
			payload: `{"status":"success","data":[]}`,
			wantErr: model.ErrNoRecordsFound,
		},
		{
			name:    "ambiguous national id",
			payload: `{"status":"success","data":[{"id":"1"},{"id":"2"}]}`,
			wantErr: model.ErrTooManyRecords,
		},
	}
	for _, tt := range tests {
		test.Run(tt.name, func(test *testing.T) {
			api := newClient(test, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/employees/search" {
					test.Errorf("path = %q", r.URL.Path)
				}
				if r.URL.Query().Get("national_id") != "0012345678" {
					test.Errorf("query = %q", r.URL.RawQuery)
				}
				w.Write([]byte(tt.payload))
			}))

			emp, err := api.SearchEmployee(context.Background(), "0012345678")
			if err != tt.wantErr {
				test.Fatalf("SearchEmployee() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && (emp == nil || emp.Id.Int64() != tt.wantId) {
				test.Errorf("employee = %+v", emp)
			}
		})
	}
}

func TestWalletChargeBulk(test *testing.T) {

	csvData := []byte("national_id,amount\n0012345678,150.50\n0087654321,99\n")

	api := newClient(test, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wallet/charge-bulk" || r.Method != http.MethodPost {
			test.Errorf("%s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			test.Fatalf("ParseMultipartForm() error = %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			test.Fatalf("FormFile() error = %v", err)
		}
		defer file.Close()
		if header.Filename != "charges.csv" {
			test.Errorf("filename = %q", header.Filename)
		}
		got, _ := io.ReadAll(file)
		if string(got) != string(csvData) {
			test.Errorf("upload body = %q", got)
		}
		w.Write([]byte(`{"status":"success"}`))
	}))

	if err := api.WalletChargeBulk(context.Background(), csvData); err != nil {
		test.Fatalf("WalletChargeBulk() error = %v", err)
	}
}

func TestBankAccounts(test *testing.T) {

	api := newClient(test, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/merchant/bank-accounts" {
			test.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"status":"success","data":[
			{"id":"1","title":"Main","bank_name":"Mellat","iban":"IR000000000000000000000001","status":"verified"}
		]}`))
	}))

	list, err := api.BankAccounts(context.Background())
	if err != nil {
		test.Fatalf("BankAccounts() error = %v", err)
	}
	if list.Total != 1 || list.Data[0].Status != "verified" {
		test.Errorf("list = %+v", list)
	}
}

func TestCreateBankAccount(test *testing.T) {

	api := newClient(test, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			test.Errorf("method = %q", r.Method)
		}
		w.Write([]byte(`{"status":"success","data":{"id":"9","title":"Main","iban":"IR000000000000000000000001","status":"pending"}}`))
	}))

	created, err := api.CreateBankAccount(context.Background(), &model.BankAccount{
		Title: "Main", Iban: "IR000000000000000000000001",
	})
	if err != nil {
		test.Fatalf("CreateBankAccount() error = %v", err)
	}
	if created == nil || created.Id != 9 || created.Status != "pending" {
		test.Errorf("created = %+v", created)
	}
}

func TestRegisterUnavailable(test *testing.T) {

	for _, code := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		api := newClient(test, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))

		err := api.RegisterCompany(context.Background(), &vandapay.Registration{
			CompanyName: "Acme", Email: "a@acme.io", Phone: "555", Password: "secret",
		})
		if err != vandapay.ErrRegistrationUnavailable {
			test.Errorf("RegisterCompany() [%d] error = %v, want %v",
				code, err, vandapay.ErrRegistrationUnavailable,
			)
		}
	}
}

func TestRegisterValidationPassthrough(test *testing.T) {

	api := newClient(test, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/public/merchant/register" {
			test.Errorf("path = %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":"email_exists","message":"E-mail already registered.","data":{"status":400}}`))
	}))

	err := api.RegisterMerchant(context.Background(), &vandapay.Registration{
		MerchantName: "Store", Email: "a@acme.io", Phone: "555", Password: "secret",
	})
	e, _ := errors.FromError(err)
	if e == nil || e.Id != "email_exists" {
		test.Errorf("error = %+v, want validation passthrough", e)
	}
}
