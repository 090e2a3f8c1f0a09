/*
Package dbudgeteer reads budget data from a Google Sheets worksheet on behalf of a desktop user.

dbudgeteer authorises itself with the OAuth 2.0 installed application flow: it starts a short-lived
listener on localhost, shows the Google consent page in the user's browser and exchanges the returned
authorization code for a token. The token is then used to read a range of cells from a spreadsheet.

dbudgeteer supports the following commands:

  - serve, to run the HTTP service (GET /test reads the configured range)
  - authorise, to authorise access to the Google Sheets worksheet
  - get, to read a range from a Google Sheets worksheet and print it or save it as a TSV file
  - revision, to display the latest revision of a spreadsheet
  - version, to display the current version
*/
package dbudgeteer
