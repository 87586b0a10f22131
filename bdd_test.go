package mesto

import (
	"encoding/json"
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCardSharingScenario(t *testing.T) {
	Convey("Given a fresh server", t, func() {
		router := newTestServer().Router()

		Convey("When a user registers with only email and password", func() {
			w := doJSON(router, http.MethodPost, "/signup", `{"email": "a@b.com", "password": "secret1"}`)

			So(w.Code, ShouldEqual, http.StatusCreated)

			profile := Profile{}
			So(json.NewDecoder(w.Body).Decode(&profile), ShouldBeNil)

			Convey("Then the profile carries the defaults and no password", func() {
				So(profile.Name, ShouldEqual, DefaultName)
				So(profile.About, ShouldEqual, DefaultAbout)
				So(profile.Avatar, ShouldEqual, DefaultAvatar)
				So(profile.Email, ShouldEqual, "a@b.com")
			})

			Convey("And the user signs in with the same credentials", func() {
				w := doJSON(router, http.MethodPost, "/signin", `{"email": "a@b.com", "password": "secret1"}`)
				So(w.Code, ShouldEqual, http.StatusOK)

				var cookie *http.Cookie
				for _, c := range w.Result().Cookies() {
					if c.Name == sessionCookie {
						cookie = c
					}
				}
				So(cookie, ShouldNotBeNil)

				Convey("Then /users/me answers with the same profile", func() {
					w := doJSON(router, http.MethodGet, "/users/me", "", cookie)
					So(w.Code, ShouldEqual, http.StatusOK)

					me := Profile{}
					So(json.NewDecoder(w.Body).Decode(&me), ShouldBeNil)
					So(me, ShouldResemble, profile)
				})

				Convey("And the user posts a card", func() {
					w := doJSON(router, http.MethodPost, "/cards", `{"name": "Cat", "link": "https://x.com/cat.jpg"}`, cookie)
					So(w.Code, ShouldEqual, http.StatusCreated)

					card := CardView{}
					So(json.NewDecoder(w.Body).Decode(&card), ShouldBeNil)
					So(card.Owner, ShouldResemble, profile)
					So(card.Likes, ShouldBeEmpty)

					Convey("When a second user likes the card", func() {
						secondCookie := signupAndSignin(t, router, "c@d.com")

						w := doJSON(router, http.MethodPut, "/cards/"+card.ID+"/likes", "", secondCookie)
						So(w.Code, ShouldEqual, http.StatusOK)

						liked := CardView{}
						So(json.NewDecoder(w.Body).Decode(&liked), ShouldBeNil)
						So(len(liked.Likes), ShouldEqual, 1)
						So(liked.Likes[0].Email, ShouldEqual, "c@d.com")

						Convey("Then liking it again changes nothing", func() {
							w := doJSON(router, http.MethodPut, "/cards/"+card.ID+"/likes", "", secondCookie)
							So(w.Code, ShouldEqual, http.StatusOK)

							again := CardView{}
							So(json.NewDecoder(w.Body).Decode(&again), ShouldBeNil)
							So(len(again.Likes), ShouldEqual, 1)
						})

						Convey("And the second user cannot delete the card", func() {
							w := doJSON(router, http.MethodDelete, "/cards/"+card.ID, "", secondCookie)
							So(w.Code, ShouldEqual, http.StatusForbidden)

							list := doJSON(router, http.MethodGet, "/cards", "", secondCookie)
							cards := []CardView{}
							So(json.NewDecoder(list.Body).Decode(&cards), ShouldBeNil)
							So(len(cards), ShouldEqual, 1)
						})
					})
				})
			})
		})
	})
}
