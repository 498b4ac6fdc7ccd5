package broken

//accessor:gen get, bogus
type Bad struct {
	X int `access:"get(cp"`
}
